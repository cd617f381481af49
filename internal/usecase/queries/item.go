package queries

import (
	"context"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAll(ctx context.Context) ([]*ItemView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
}

func NewItemQueries(store ItemReadStore) ItemQueries {
	return &itemQueriesImpl{store: store}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *itemQueriesImpl) List(ctx context.Context) ([]*ItemView, error) {
	return q.store.FindAll(ctx)
}
