package queries

import (
	"context"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByOwner(ctx context.Context, email string) ([]*RequestListItem, error)
	FindByBorrower(ctx context.Context, email string) ([]*RequestListItem, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// ListByOwner returns requests received against the owner's items,
	// newest first.
	ListByOwner(ctx context.Context, email string) ([]*RequestListItem, error)
	// ListByBorrower returns requests the borrower has sent, newest first.
	ListByBorrower(ctx context.Context, email string) ([]*RequestListItem, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *requestQueriesImpl) ListByOwner(ctx context.Context, email string) ([]*RequestListItem, error) {
	return q.store.FindByOwner(ctx, email)
}

func (q *requestQueriesImpl) ListByBorrower(ctx context.Context, email string) ([]*RequestListItem, error) {
	return q.store.FindByBorrower(ctx, email)
}
