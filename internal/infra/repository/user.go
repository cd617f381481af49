package repository

import (
	"context"

	"lendhub/internal/infra"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// ApplySettlement is additive only; karma deltas are always positive
// (the late-penalty floor is applied before this point) and total_deals
// never decreases.
func (r *UserRepository) ApplySettlement(ctx context.Context, db infra.DBTX, email string, karmaDelta int) error {
	const q = `
		UPDATE users
		SET karma = karma + $2, total_deals = total_deals + 1
		WHERE email = $1`

	tag, err := db.Exec(ctx, q, email, karmaDelta)
	if err != nil {
		return infra.WrapRepoErr("failed to apply settlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("settlement user not found", nil, infra.KindNotFound)
	}
	return nil
}
