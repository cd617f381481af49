package shared

import (
	"context"
	"time"

	"lendhub/internal/domain/item"
	"lendhub/internal/domain/request"
	"lendhub/internal/infra"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads

type RequestSnapshot struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	ItemTitle     string
	LenderEmail   string
	BorrowerEmail string
	Duration      string
	Status        request.Status
	ReturnTime    *time.Time
}

type ItemSnapshot struct {
	ID         uuid.UUID
	Title      string
	OwnerEmail string
	Status     item.Status
}

type CommandReads interface {
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
}

// CompleteWrite carries everything the completion update stamps on the
// request row.
type CompleteWrite struct {
	Rating             int
	CompletedAt        time.Time
	ExcessTime         string
	FinalBorrowerKarma int
}

// Write-side repositories. Status transitions are conditional updates:
// the affected-row count is zero when the expected prior status no
// longer matches, which callers surface as a conflict instead of
// trusting their earlier read.

type RequestRepository interface {
	Create(ctx context.Context, db infra.DBTX, req *request.BorrowRequest) error
	Approve(ctx context.Context, db infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error)
	Complete(ctx context.Context, db infra.DBTX, id uuid.UUID, w CompleteWrite) (int64, error)
	Reject(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error)
	DeleteOpenByItem(ctx context.Context, db infra.DBTX, itemID uuid.UUID) (int64, error)
}

type ItemRepository interface {
	Create(ctx context.Context, db infra.DBTX, it *item.Item) error
	Book(ctx context.Context, db infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error)
	Release(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	// ApplySettlement adds the karma delta and bumps total_deals by one.
	ApplySettlement(ctx context.Context, db infra.DBTX, email string, karmaDelta int) error
}
