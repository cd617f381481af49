//go:build unit

package request_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBorrowRequest(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		req, err := request.NewBorrowRequest(
			itemID, "Cordless Drill",
			"Lender@Example.com", "borrower@example.com",
			"555-0101", "weekend project", "2 Days", now,
		)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, itemID, req.ItemID())
		assert.Equal(t, "lender@example.com", req.LenderEmail())
		assert.Equal(t, "borrower@example.com", req.BorrowerEmail())
		assert.Equal(t, request.StatusPending, req.Status())
		assert.Equal(t, "2 Days", req.Duration())
		assert.Equal(t, now, req.CreatedAt())
		assert.Nil(t, req.ReturnTime())
		assert.Nil(t, req.CompletedAt())
	})

	t.Run("blank duration gets the default", func(t *testing.T) {
		req, err := request.NewBorrowRequest(
			itemID, "Cordless Drill",
			"lender@example.com", "borrower@example.com",
			"", "", "", now,
		)
		require.NoError(t, err)
		assert.Equal(t, request.DefaultDuration, req.Duration())
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			itemID   uuid.UUID
			lender   string
			borrower string
			errIs    error
		}{
			{name: "missing item", itemID: uuid.Nil, lender: "a@x.com", borrower: "b@x.com", errIs: request.ErrMissingItem},
			{name: "missing lender", itemID: itemID, lender: "", borrower: "b@x.com", errIs: request.ErrMissingLender},
			{name: "missing borrower", itemID: itemID, lender: "a@x.com", borrower: "", errIs: request.ErrMissingBorrower},
			{name: "self borrow", itemID: itemID, lender: "a@x.com", borrower: "a@x.com", errIs: request.ErrSelfBorrow},
			{name: "self borrow with case difference", itemID: itemID, lender: "A@x.com", borrower: "a@X.com", errIs: request.ErrSelfBorrow},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := request.NewBorrowRequest(
					tt.itemID, "Drill", tt.lender, tt.borrower, "", "", "1 Days", now,
				)
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, request.ValidateRating(1))
	assert.NoError(t, request.ValidateRating(5))
	assert.ErrorIs(t, request.ValidateRating(0), request.ErrInvalidRating)
	assert.ErrorIs(t, request.ValidateRating(6), request.ErrInvalidRating)
}
