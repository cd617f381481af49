package readstore

import (
	"context"
	"errors"

	"lendhub/internal/infra"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemReadStore struct {
	db infra.DBTX
}

func NewItemReadStore(db infra.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

const itemColumns = `id, title, description, category, price, price_unit,
	status, longitude, latitude, owner_email, return_time, created_at`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const q = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	var v queries.ItemView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Title, &v.Description, &v.Category, &v.Price, &v.PriceUnit,
		&v.Status, &v.Longitude, &v.Latitude, &v.OwnerEmail, &v.ReturnTime, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return &v, nil
}

func (r *ItemReadStore) FindAll(ctx context.Context) ([]*queries.ItemView, error) {
	const q = `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	result := make([]*queries.ItemView, 0)
	for rows.Next() {
		var v queries.ItemView
		err := rows.Scan(
			&v.ID, &v.Title, &v.Description, &v.Category, &v.Price, &v.PriceUnit,
			&v.Status, &v.Longitude, &v.Latitude, &v.OwnerEmail, &v.ReturnTime, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return result, nil
}
