//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/request"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemFixture struct {
	store    *memStore
	clock    *clock.MockClock
	itemCmds commands.ItemCommands
	reqCmds  commands.RequestCommands
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()

	store := newMemStore()
	store.addUser(lenderEmail)
	store.addUser(borrowerEmail)

	mc := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	itemCmds := commands.NewItemCommands(
		itemRepoAdapter{store}, store, store, itemQueriesAdapter{store}, memUoW{}, mc,
	)
	reqCmds := commands.NewRequestCommands(
		store, itemRepoAdapter{store}, store, store, store, memUoW{}, mc,
	)

	return &itemFixture{store: store, clock: mc, itemCmds: itemCmds, reqCmds: reqCmds}
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()
	f := newItemFixture(t)

	view, err := f.itemCmds.Create(ctx, commands.CreateItemParams{
		Title:      "Pressure Washer",
		Category:   "Tools",
		Price:      12,
		PriceUnit:  "Day",
		OwnerEmail: lenderEmail,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pressure Washer", view.Title)
	assert.Equal(t, "Available", view.Status)
	assert.Equal(t, lenderEmail, view.OwnerEmail)

	_, err = f.itemCmds.Create(ctx, commands.CreateItemParams{
		Title:      "Broken",
		PriceUnit:  "Fortnight",
		OwnerEmail: lenderEmail,
	})
	assertIs(t, err, commands.ErrDomainValidation)
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade removes open requests and keeps history", func(t *testing.T) {
		f := newItemFixture(t)
		f.store.addUser("other@example.com")
		itemID := f.store.addItem(lenderEmail, "Drill")

		completed, err := f.reqCmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: borrowerEmail,
			Duration:      "1 Hours",
		})
		require.NoError(t, err)
		_, err = f.reqCmds.Approve(ctx, completed.ID)
		require.NoError(t, err)
		_, err = f.reqCmds.Complete(ctx, completed.ID, nil)
		require.NoError(t, err)

		pending, err := f.reqCmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: "other@example.com",
		})
		require.NoError(t, err)

		require.NoError(t, f.itemCmds.Delete(ctx, itemID, lenderEmail))

		_, exists := f.store.items[itemID]
		assert.False(t, exists)

		_, pendingExists := f.store.requests[pending.ID]
		assert.False(t, pendingExists, "open request should be cascade-deleted")

		kept, keptExists := f.store.requests[completed.ID]
		require.True(t, keptExists, "completed request stays as history")
		assert.Equal(t, request.StatusCompleted, kept.status)
		assert.Equal(t, itemID, kept.itemID)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		f := newItemFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")

		err := f.itemCmds.Delete(ctx, itemID, borrowerEmail)
		assertIs(t, err, commands.ErrNotItemOwner)

		_, exists := f.store.items[itemID]
		assert.True(t, exists)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemFixture(t)
		err := f.itemCmds.Delete(ctx, uuid.New(), lenderEmail)
		assertIs(t, err, commands.ErrItemNotFound)
	})
}
