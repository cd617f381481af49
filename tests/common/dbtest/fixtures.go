//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING`,
		userID, email, name, role, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateTestItem(t *testing.T, db DBLike, ownerEmail, title, category string) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO items (id, title, category, price, price_unit, owner_email)
		 VALUES ($1, $2, $3, 5.0, 'Day', $4)`,
		itemID, title, category, ownerEmail)
	require.NoError(t, err)

	return itemID
}

func UserKarma(t *testing.T, db DBLike, email string) (karma, totalDeals int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT karma, total_deals FROM users WHERE email = $1", email).Scan(&karma, &totalDeals)
	require.NoError(t, err)
	return karma, totalDeals
}

// ResetDB truncates all tables between tests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE borrow_requests, items, users CASCADE")
	return err
}
