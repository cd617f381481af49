package readstore

import (
	"context"
	"errors"

	"lendhub/internal/domain/item"
	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the lifecycle engine's pre-write reads. Every
// operation re-reads current state from the store; there is no caching
// layer in front of it.
type CommandReads struct {
	db infra.DBTX
}

func NewCommandReads(db infra.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	const q = `
		SELECT id, item_id, item_title, lender_email, borrower_email,
		       duration, status, return_time
		FROM borrow_requests
		WHERE id = $1`

	var snap shared.RequestSnapshot
	var status string
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.ItemID, &snap.ItemTitle, &snap.LenderEmail, &snap.BorrowerEmail,
		&snap.Duration, &status, &snap.ReturnTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read borrow request snapshot", err)
	}
	snap.Status = request.Status(status)
	return &snap, nil
}

func (r *CommandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	const q = `SELECT id, title, owner_email, status FROM items WHERE id = $1`

	var snap shared.ItemSnapshot
	var status string
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Title, &snap.OwnerEmail, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read item snapshot", err)
	}
	snap.Status = item.Status(status)
	return &snap, nil
}
