package readstore

import (
	"context"
	"errors"

	"lendhub/internal/infra"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) ProfileByEmail(ctx context.Context, email string) (*queries.UserProfileView, error) {
	const q = `
		SELECT id, email, name, address, phone, profile_image, role,
		       karma, total_deals, created_at
		FROM users
		WHERE email = $1`

	var v queries.UserProfileView
	err := r.db.QueryRow(ctx, q, email).Scan(
		&v.ID, &v.Email, &v.Name, &v.Address, &v.Phone, &v.ProfileImage, &v.Role,
		&v.Karma, &v.TotalDeals, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}

func (r *UserReadStore) CredentialsByEmail(ctx context.Context, email string) (*commands.Credentials, error) {
	const q = `
		SELECT id, email, role, password_hash
		FROM users
		WHERE email = $1`

	var c commands.Credentials
	err := r.db.QueryRow(ctx, q, email).Scan(&c.ID, &c.Email, &c.Role, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find credentials by email", err)
	}
	return &c, nil
}
