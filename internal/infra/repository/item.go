package repository

import (
	"context"
	"time"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, db infra.DBTX, it *item.Item) error {
	const q = `
		INSERT INTO items (
			id, title, description, category, price, price_unit,
			status, longitude, latitude, owner_email, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := db.Exec(ctx, q,
		it.ID(), it.Title(), it.Description(), string(it.Category()), it.Price(), string(it.PriceUnit()),
		it.Status().String(), it.Location().Longitude, it.Location().Latitude, it.OwnerEmail(), it.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

// Book only succeeds on an Available item; the zero-row case is the
// at-most-one-approved-request-per-item guard at write time.
func (r *ItemRepository) Book(ctx context.Context, db infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error) {
	const q = `
		UPDATE items
		SET status = 'Booked', return_time = $2
		WHERE id = $1 AND status = 'Available'`

	tag, err := db.Exec(ctx, q, id, returnTime)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to book item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) Release(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error) {
	const q = `
		UPDATE items
		SET status = 'Available', return_time = NULL
		WHERE id = $1`

	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error) {
	const q = `DELETE FROM items WHERE id = $1`

	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete item", err)
	}
	return tag.RowsAffected(), nil
}
