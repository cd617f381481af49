//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendhub/internal/domain/item"
	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// memStore is an in-memory stand-in for the persistence layer. It
// implements the write repositories, the command-side reads and the
// request queries against shared maps so engine tests can observe every
// side effect without a database. Conditional updates mirror the SQL:
// zero rows when the expected prior status does not match.
type memStore struct {
	requests map[uuid.UUID]*memRequest
	items    map[uuid.UUID]*memItem
	users    map[string]*memUser
}

type memRequest struct {
	id            uuid.UUID
	itemID        uuid.UUID
	itemTitle     string
	lenderEmail   string
	borrowerEmail string
	borrowerPhone string
	message       string
	duration      string
	status        request.Status
	returnTime    *time.Time
	excessTime    *string
	finalKarma    *int
	rating        *int
	createdAt     time.Time
	completedAt   *time.Time
}

type memItem struct {
	id         uuid.UUID
	title      string
	ownerEmail string
	status     item.Status
	returnTime *time.Time
}

type memUser struct {
	karma      int
	totalDeals int
}

func newMemStore() *memStore {
	return &memStore{
		requests: make(map[uuid.UUID]*memRequest),
		items:    make(map[uuid.UUID]*memItem),
		users:    make(map[string]*memUser),
	}
}

func (s *memStore) addUser(email string) {
	s.users[email] = &memUser{}
}

func (s *memStore) addItem(ownerEmail, title string) uuid.UUID {
	id := uuid.New()
	s.items[id] = &memItem{id: id, title: title, ownerEmail: ownerEmail, status: item.StatusAvailable}
	return id
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

// assertIs matches sentinels through mark barriers, which the standard
// library's errors.Is cannot see.
func assertIs(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "error %v should match %v", err, target)
}

// ---- shared.RequestRepository

func (s *memStore) Create(_ context.Context, _ infra.DBTX, req *request.BorrowRequest) error {
	s.requests[req.ID()] = &memRequest{
		id:            req.ID(),
		itemID:        req.ItemID(),
		itemTitle:     req.ItemTitle(),
		lenderEmail:   req.LenderEmail(),
		borrowerEmail: req.BorrowerEmail(),
		borrowerPhone: req.BorrowerPhone(),
		message:       req.Message(),
		duration:      req.Duration(),
		status:        req.Status(),
		createdAt:     req.CreatedAt(),
	}
	return nil
}

func (s *memStore) Approve(_ context.Context, _ infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error) {
	r, ok := s.requests[id]
	if !ok || r.status != request.StatusPending {
		return 0, nil
	}
	r.status = request.StatusApproved
	r.returnTime = &returnTime
	return 1, nil
}

func (s *memStore) Complete(_ context.Context, _ infra.DBTX, id uuid.UUID, w shared.CompleteWrite) (int64, error) {
	r, ok := s.requests[id]
	if !ok || r.status != request.StatusApproved {
		return 0, nil
	}
	r.status = request.StatusCompleted
	r.rating = &w.Rating
	r.completedAt = &w.CompletedAt
	r.excessTime = &w.ExcessTime
	r.finalKarma = &w.FinalBorrowerKarma
	return 1, nil
}

func (s *memStore) Reject(_ context.Context, _ infra.DBTX, id uuid.UUID) (int64, error) {
	r, ok := s.requests[id]
	if !ok || r.status != request.StatusPending {
		return 0, nil
	}
	r.status = request.StatusRejected
	return 1, nil
}

func (s *memStore) DeleteOpenByItem(_ context.Context, _ infra.DBTX, itemID uuid.UUID) (int64, error) {
	var n int64
	for id, r := range s.requests {
		if r.itemID == itemID && (r.status == request.StatusPending || r.status == request.StatusApproved) {
			delete(s.requests, id)
			n++
		}
	}
	return n, nil
}

// ---- shared.ItemRepository

func (s *memStore) CreateItem(_ context.Context, _ infra.DBTX, it *item.Item) error {
	s.items[it.ID()] = &memItem{
		id:         it.ID(),
		title:      it.Title(),
		ownerEmail: it.OwnerEmail(),
		status:     it.Status(),
	}
	return nil
}

func (s *memStore) Book(_ context.Context, _ infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error) {
	it, ok := s.items[id]
	if !ok || it.status != item.StatusAvailable {
		return 0, nil
	}
	it.status = item.StatusBooked
	it.returnTime = &returnTime
	return 1, nil
}

func (s *memStore) Release(_ context.Context, _ infra.DBTX, id uuid.UUID) (int64, error) {
	it, ok := s.items[id]
	if !ok {
		return 0, nil
	}
	it.status = item.StatusAvailable
	it.returnTime = nil
	return 1, nil
}

func (s *memStore) Delete(_ context.Context, _ infra.DBTX, id uuid.UUID) (int64, error) {
	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	delete(s.items, id)
	return 1, nil
}

// ---- shared.UserRepository

func (s *memStore) ApplySettlement(_ context.Context, _ infra.DBTX, email string, karmaDelta int) error {
	u, ok := s.users[email]
	if !ok {
		return notFound("user not found")
	}
	u.karma += karmaDelta
	u.totalDeals++
	return nil
}

// ---- shared.CommandReads

func (s *memStore) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, notFound("borrow request not found")
	}
	return &shared.RequestSnapshot{
		ID:            r.id,
		ItemID:        r.itemID,
		ItemTitle:     r.itemTitle,
		LenderEmail:   r.lenderEmail,
		BorrowerEmail: r.borrowerEmail,
		Duration:      r.duration,
		Status:        r.status,
		ReturnTime:    r.returnTime,
	}, nil
}

func (s *memStore) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, notFound("item not found")
	}
	return &shared.ItemSnapshot{
		ID:         it.id,
		Title:      it.title,
		OwnerEmail: it.ownerEmail,
		Status:     it.status,
	}, nil
}

// ---- queries.RequestQueries

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, notFound("borrow request not found")
	}
	return &queries.RequestView{
		ID:                 r.id,
		ItemID:             r.itemID,
		ItemTitle:          r.itemTitle,
		LenderEmail:        r.lenderEmail,
		BorrowerEmail:      r.borrowerEmail,
		BorrowerPhone:      r.borrowerPhone,
		Message:            r.message,
		Duration:           r.duration,
		Status:             r.status.String(),
		ReturnTime:         r.returnTime,
		ExcessTime:         r.excessTime,
		FinalBorrowerKarma: r.finalKarma,
		Rating:             r.rating,
		CreatedAt:          r.createdAt,
		CompletedAt:        r.completedAt,
	}, nil
}

func (s *memStore) ListByOwner(_ context.Context, _ string) ([]*queries.RequestListItem, error) {
	return nil, nil
}

func (s *memStore) ListByBorrower(_ context.Context, _ string) ([]*queries.RequestListItem, error) {
	return nil, nil
}

// ---- queries.ItemQueries

func (s *memStore) List(_ context.Context) ([]*queries.ItemView, error) {
	return nil, nil
}

// GetItemByID adapts the item side for queries.ItemQueries via itemQueriesAdapter.

type itemQueriesAdapter struct{ s *memStore }

func (a itemQueriesAdapter) GetByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	it, ok := a.s.items[id]
	if !ok {
		return nil, notFound("item not found")
	}
	return &queries.ItemView{
		ID:         it.id,
		Title:      it.title,
		Status:     it.status.String(),
		OwnerEmail: it.ownerEmail,
		ReturnTime: it.returnTime,
	}, nil
}

func (a itemQueriesAdapter) List(_ context.Context) ([]*queries.ItemView, error) {
	return nil, nil
}

// ---- shared.UnitOfWork

// memUoW runs the function directly; atomicity is not under test here.
type memUoW struct{}

func (memUoW) Within(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, nil)
}

// itemRepoAdapter renames CreateItem back to Create so memStore can
// implement both repositories despite the method name collision.
type itemRepoAdapter struct{ s *memStore }

func (a itemRepoAdapter) Create(ctx context.Context, db infra.DBTX, it *item.Item) error {
	return a.s.CreateItem(ctx, db, it)
}

func (a itemRepoAdapter) Book(ctx context.Context, db infra.DBTX, id uuid.UUID, returnTime time.Time) (int64, error) {
	return a.s.Book(ctx, db, id, returnTime)
}

func (a itemRepoAdapter) Release(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error) {
	return a.s.Release(ctx, db, id)
}

func (a itemRepoAdapter) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) (int64, error) {
	return a.s.Delete(ctx, db, id)
}
