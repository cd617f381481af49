package shared

import (
	"context"

	"lendhub/internal/infra"
)

// UnitOfWork runs a function inside a single database transaction.
// Multi-entity writes (approve: request+item; complete:
// request+item+borrower+lender) go through Within so they land
// atomically; the request row is always written first as the
// authoritative state.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
}
