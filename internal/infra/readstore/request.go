package readstore

import (
	"context"
	"errors"

	"lendhub/internal/infra"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db infra.DBTX
}

func NewRequestReadStore(db infra.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const q = `
		SELECT id, item_id, item_title, lender_email, borrower_email,
		       borrower_phone, message, duration, status, return_time,
		       excess_time, final_borrower_karma, rating, created_at, completed_at
		FROM borrow_requests
		WHERE id = $1`

	var v queries.RequestView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.ItemID, &v.ItemTitle, &v.LenderEmail, &v.BorrowerEmail,
		&v.BorrowerPhone, &v.Message, &v.Duration, &v.Status, &v.ReturnTime,
		&v.ExcessTime, &v.FinalBorrowerKarma, &v.Rating, &v.CreatedAt, &v.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find borrow request by ID", err)
	}
	return &v, nil
}

// FindByOwner lists requests received against the owner's items,
// enriched with the borrower's display name and phone, newest first.
func (r *RequestReadStore) FindByOwner(ctx context.Context, email string) ([]*queries.RequestListItem, error) {
	const q = `
		SELECT r.id, r.item_id, r.item_title, r.status, r.duration, r.message,
		       COALESCE(u.name, r.borrower_email), r.borrower_phone,
		       r.return_time, r.excess_time, r.rating, r.created_at
		FROM borrow_requests r
		LEFT JOIN users u ON u.email = r.borrower_email
		WHERE r.lender_email = $1
		ORDER BY r.created_at DESC`

	return r.queryList(ctx, q, email)
}

// FindByBorrower lists requests the borrower has sent, with the
// lender's display name and contact phone, newest first.
func (r *RequestReadStore) FindByBorrower(ctx context.Context, email string) ([]*queries.RequestListItem, error) {
	const q = `
		SELECT r.id, r.item_id, r.item_title, r.status, r.duration, r.message,
		       COALESCE(u.name, r.lender_email), u.phone,
		       r.return_time, r.excess_time, r.rating, r.created_at
		FROM borrow_requests r
		LEFT JOIN users u ON u.email = r.lender_email
		WHERE r.borrower_email = $1
		ORDER BY r.created_at DESC`

	return r.queryList(ctx, q, email)
}

func (r *RequestReadStore) queryList(ctx context.Context, q, email string) ([]*queries.RequestListItem, error) {
	rows, err := r.db.Query(ctx, q, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list borrow requests", err)
	}
	defer rows.Close()

	result := make([]*queries.RequestListItem, 0)
	for rows.Next() {
		var item queries.RequestListItem
		err := rows.Scan(
			&item.ID, &item.ItemID, &item.ItemTitle, &item.Status, &item.Duration, &item.Message,
			&item.CounterpartName, &item.CounterpartPhone,
			&item.ReturnTime, &item.ExcessTime, &item.Rating, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan borrow request row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate borrow request rows", err)
	}
	return result, nil
}
