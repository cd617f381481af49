package repository

import (
	"context"
	"errors"
	"time"

	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, db infra.DBTX, req *request.BorrowRequest) error {
	const q = `
		INSERT INTO borrow_requests (
			id, item_id, item_title, lender_email, borrower_email,
			borrower_phone, message, duration, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := db.Exec(ctx, q,
		req.ID(), req.ItemID(), req.ItemTitle(), req.LenderEmail(), req.BorrowerEmail(),
		req.BorrowerPhone(), req.Message(), req.Duration(), req.Status().String(), req.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr("referenced user does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create borrow request", err)
	}
	return nil
}

// Approve is a conditional write: zero rows affected means the request
// was no longer pending at write time.
func (r *RequestRepository) Approve(ctx context.Context, db infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error) {
	const q = `
		UPDATE borrow_requests
		SET status = 'approved', return_time = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := db.Exec(ctx, q, id, returnTime)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to approve borrow request", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RequestRepository) Complete(ctx context.Context, db infra.DBTX, id uuid.UUID, w shared.CompleteWrite) (int64, error) {
	const q = `
		UPDATE borrow_requests
		SET status = 'completed',
		    rating = $2,
		    completed_at = $3,
		    excess_time = $4,
		    final_borrower_karma = $5
		WHERE id = $1 AND status = 'approved'`

	tag, err := db.Exec(ctx, q, id, w.Rating, w.CompletedAt, w.ExcessTime, w.FinalBorrowerKarma)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete borrow request", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RequestRepository) Reject(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error) {
	const q = `
		UPDATE borrow_requests
		SET status = 'rejected'
		WHERE id = $1 AND status = 'pending'`

	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject borrow request", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteOpenByItem hard-deletes pending and approved requests when
// their item goes away; terminal requests stay as history.
func (r *RequestRepository) DeleteOpenByItem(ctx context.Context, db infra.DBTX, itemID uuid.UUID) (int64, error) {
	const q = `
		DELETE FROM borrow_requests
		WHERE item_id = $1 AND status IN ('pending', 'approved')`

	tag, err := db.Exec(ctx, q, itemID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cascade delete borrow requests", err)
	}
	return tag.RowsAffected(), nil
}
