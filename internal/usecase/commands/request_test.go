//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/item"
	"lendhub/internal/domain/request"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/ptr"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lenderEmail   = "lender@example.com"
	borrowerEmail = "borrower@example.com"
)

type engineFixture struct {
	store *memStore
	clock *clock.MockClock
	cmds  commands.RequestCommands
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	store := newMemStore()
	store.addUser(lenderEmail)
	store.addUser(borrowerEmail)

	mc := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewRequestCommands(
		store, itemRepoAdapter{store}, store, store, store, memUoW{}, mc,
	)

	return &engineFixture{store: store, clock: mc, cmds: cmds}
}

func (f *engineFixture) createRequest(t *testing.T, itemID uuid.UUID, duration string) uuid.UUID {
	t.Helper()

	view, err := f.cmds.Create(context.Background(), commands.CreateRequestParams{
		ItemID:        itemID,
		BorrowerEmail: borrowerEmail,
		BorrowerPhone: "555-0101",
		Duration:      duration,
	})
	require.NoError(t, err)
	return view.ID
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the item and defaults the lender to the owner", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Cordless Drill")

		view, err := f.cmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: borrowerEmail,
			Message:       "weekend project",
			Duration:      "2 Days",
		})
		require.NoError(t, err)

		want := &queries.RequestView{
			ID:            view.ID,
			ItemID:        itemID,
			ItemTitle:     "Cordless Drill",
			LenderEmail:   lenderEmail,
			BorrowerEmail: borrowerEmail,
			Message:       "weekend project",
			Duration:      "2 Days",
			Status:        "pending",
			CreatedAt:     f.clock.Now(),
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("request view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("item stays available with multiple pending requests", func(t *testing.T) {
		f := newEngineFixture(t)
		f.store.addUser("other@example.com")
		itemID := f.store.addItem(lenderEmail, "Ladder")

		f.createRequest(t, itemID, "1 Days")
		_, err := f.cmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: "other@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, item.StatusAvailable, f.store.items[itemID].status)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.cmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        uuid.New(),
			BorrowerEmail: borrowerEmail,
		})
		assertIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("owner borrowing own item fails validation", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")

		_, err := f.cmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: lenderEmail,
		})
		assertIs(t, err, commands.ErrDomainValidation)
	})
}

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("books the item until the parsed due time", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "2 Hours")

		result, err := f.cmds.Approve(ctx, reqID)
		require.NoError(t, err)

		wantDue := f.clock.Now().Add(2 * time.Hour)
		assert.Equal(t, wantDue, result.ReturnTime)
		assert.Equal(t, "2 Hours", result.Duration)

		assert.Equal(t, request.StatusApproved, f.store.requests[reqID].status)
		assert.Equal(t, item.StatusBooked, f.store.items[itemID].status)
		require.NotNil(t, f.store.items[itemID].returnTime)
		assert.Equal(t, wantDue, *f.store.items[itemID].returnTime)
	})

	t.Run("day durations book for whole days", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "3 Days")

		result, err := f.cmds.Approve(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, f.clock.Now().Add(72*time.Hour), result.ReturnTime)
	})

	t.Run("second request for a booked item is refused", func(t *testing.T) {
		f := newEngineFixture(t)
		f.store.addUser("other@example.com")
		itemID := f.store.addItem(lenderEmail, "Drill")
		first := f.createRequest(t, itemID, "1 Days")

		second, err := f.cmds.Create(ctx, commands.CreateRequestParams{
			ItemID:        itemID,
			BorrowerEmail: "other@example.com",
		})
		require.NoError(t, err)

		_, approveErr := f.cmds.Approve(ctx, first)
		require.NoError(t, approveErr)

		_, err = f.cmds.Approve(ctx, second.ID)
		assertIs(t, err, commands.ErrItemUnavailable)
		assert.Equal(t, request.StatusPending, f.store.requests[second.ID].status)
	})

	t.Run("non-pending request conflicts", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "1 Days")

		_, err := f.cmds.Approve(ctx, reqID)
		require.NoError(t, err)

		_, err = f.cmds.Approve(ctx, reqID)
		assertIs(t, err, commands.ErrRequestConflict)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.cmds.Approve(ctx, uuid.New())
		assertIs(t, err, commands.ErrRequestNotFound)
	})
}

func TestCompleteRequest(t *testing.T) {
	ctx := context.Background()

	approve := func(t *testing.T, f *engineFixture, duration string) (uuid.UUID, uuid.UUID) {
		t.Helper()
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, duration)
		_, err := f.cmds.Approve(ctx, reqID)
		require.NoError(t, err)
		return reqID, itemID
	}

	t.Run("on-time return settles the full reward for both parties", func(t *testing.T) {
		f := newEngineFixture(t)
		reqID, itemID := approve(t, f, "2 Hours")

		f.clock.Add(time.Hour)
		result, err := f.cmds.Complete(ctx, reqID, ptr.To(4))
		require.NoError(t, err)

		assert.Equal(t, request.OnTimeLabel, result.ExcessTime)
		assert.Equal(t, 10, result.BorrowerKarma)

		assert.Equal(t, request.StatusCompleted, f.store.requests[reqID].status)
		assert.Equal(t, 4, *f.store.requests[reqID].rating)
		assert.Equal(t, item.StatusAvailable, f.store.items[itemID].status)
		assert.Nil(t, f.store.items[itemID].returnTime)

		assert.Equal(t, 10, f.store.users[borrowerEmail].karma)
		assert.Equal(t, 1, f.store.users[borrowerEmail].totalDeals)
		assert.Equal(t, 15, f.store.users[lenderEmail].karma)
		assert.Equal(t, 1, f.store.users[lenderEmail].totalDeals)
	})

	t.Run("late return deducts per full hour", func(t *testing.T) {
		f := newEngineFixture(t)
		reqID, _ := approve(t, f, "2 Hours")

		// due at +2h; complete at +5h => 3 hours late => 10 - 6 = 4
		f.clock.Add(5 * time.Hour)
		result, err := f.cmds.Complete(ctx, reqID, nil)
		require.NoError(t, err)

		assert.Equal(t, "3 hours late", result.ExcessTime)
		assert.Equal(t, 4, result.BorrowerKarma)
		assert.Equal(t, 4, f.store.users[borrowerEmail].karma)
		assert.Equal(t, 15, f.store.users[lenderEmail].karma)
	})

	t.Run("missing rating defaults to five", func(t *testing.T) {
		f := newEngineFixture(t)
		reqID, _ := approve(t, f, "1 Days")

		_, err := f.cmds.Complete(ctx, reqID, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, *f.store.requests[reqID].rating)
	})

	t.Run("out-of-range rating is rejected before any write", func(t *testing.T) {
		f := newEngineFixture(t)
		reqID, itemID := approve(t, f, "1 Days")

		_, err := f.cmds.Complete(ctx, reqID, ptr.To(6))
		assertIs(t, err, commands.ErrDomainValidation)

		assert.Equal(t, request.StatusApproved, f.store.requests[reqID].status)
		assert.Equal(t, item.StatusBooked, f.store.items[itemID].status)
		assert.Equal(t, 0, f.store.users[borrowerEmail].karma)
	})

	t.Run("double completion does not settle twice", func(t *testing.T) {
		f := newEngineFixture(t)
		reqID, _ := approve(t, f, "1 Days")

		_, err := f.cmds.Complete(ctx, reqID, nil)
		require.NoError(t, err)

		_, err = f.cmds.Complete(ctx, reqID, nil)
		assertIs(t, err, commands.ErrAlreadyCompleted)

		assert.Equal(t, 10, f.store.users[borrowerEmail].karma)
		assert.Equal(t, 1, f.store.users[borrowerEmail].totalDeals)
		assert.Equal(t, 15, f.store.users[lenderEmail].karma)
	})

	t.Run("pending request cannot be completed", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "1 Days")

		_, err := f.cmds.Complete(ctx, reqID, nil)
		assertIs(t, err, commands.ErrRequestConflict)
	})
}

func TestRejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request is rejected without side effects", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "1 Days")

		require.NoError(t, f.cmds.Reject(ctx, reqID))

		assert.Equal(t, request.StatusRejected, f.store.requests[reqID].status)
		assert.Equal(t, item.StatusAvailable, f.store.items[itemID].status)
		assert.Equal(t, 0, f.store.users[borrowerEmail].karma)
	})

	t.Run("approved request cannot be rejected", func(t *testing.T) {
		f := newEngineFixture(t)
		itemID := f.store.addItem(lenderEmail, "Drill")
		reqID := f.createRequest(t, itemID, "1 Days")

		_, err := f.cmds.Approve(ctx, reqID)
		require.NoError(t, err)

		assertIs(t, f.cmds.Reject(ctx, reqID), commands.ErrRequestConflict)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newEngineFixture(t)
		assertIs(t, f.cmds.Reject(ctx, uuid.New()), commands.ErrRequestNotFound)
	})
}
