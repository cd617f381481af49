package commands

import (
	"context"
	"time"

	"lendhub/internal/domain/item"
	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/ptr"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound            = errs.New("item not found")
	ErrRequestNotFound         = errs.New("request not found")
	ErrRequestConflict         = errs.New("request state conflict")
	ErrItemUnavailable         = errs.New("item is already booked")
	ErrAlreadyCompleted        = errs.New("request already completed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateRequestParams struct {
	ItemID        uuid.UUID
	LenderEmail   string
	BorrowerEmail string
	BorrowerPhone string
	Message       string
	Duration      string
}

type ApproveResult struct {
	ReturnTime time.Time
	Duration   string
}

type CompleteResult struct {
	ExcessTime    string
	BorrowerKarma int
}

// RequestCommands is the borrow-request lifecycle engine. It owns every
// mutation of a BorrowRequest and keeps the paired item and both user
// records in lockstep.
type RequestCommands interface {
	Create(ctx context.Context, p CreateRequestParams) (*queries.RequestView, error)
	Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error)
	Complete(ctx context.Context, id uuid.UUID, rating *int) (*CompleteResult, error)
	Reject(ctx context.Context, id uuid.UUID) error
}

type requestCommandsImpl struct {
	requestRepo    shared.RequestRepository
	itemRepo       shared.ItemRepository
	userRepo       shared.UserRepository
	reads          shared.CommandReads
	requestQueries queries.RequestQueries
	uow            shared.UnitOfWork
	clock          clock.Clock
}

func NewRequestCommands(
	requestRepo shared.RequestRepository,
	itemRepo shared.ItemRepository,
	userRepo shared.UserRepository,
	reads shared.CommandReads,
	requestQueries queries.RequestQueries,
	uow shared.UnitOfWork,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		requestRepo:    requestRepo,
		itemRepo:       itemRepo,
		userRepo:       userRepo,
		reads:          reads,
		requestQueries: requestQueries,
		uow:            uow,
		clock:          clock,
	}
}

// Create registers a new pending request against an existing item.
// The item title is snapshotted at this instant and never re-synced;
// the item itself is not mutated, so one item may collect any number of
// concurrent pending requests.
func (c *requestCommandsImpl) Create(ctx context.Context, p CreateRequestParams) (*queries.RequestView, error) {
	itemSnap, err := c.reads.ItemByID(ctx, p.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	lenderEmail := p.LenderEmail
	if lenderEmail == "" {
		lenderEmail = itemSnap.OwnerEmail
	}

	entity, err := request.NewBorrowRequest(
		p.ItemID,
		itemSnap.Title,
		lenderEmail,
		p.BorrowerEmail,
		p.BorrowerPhone,
		p.Message,
		p.Duration,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		return c.requestRepo.Create(ctx, db, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.requestQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Approve moves pending→approved, computes the due time from the
// requested duration and books the item in the same transaction. The
// status checks are repeated as conditional writes, so a concurrent
// approval of the same request or of another request on the same item
// loses with a conflict instead of silently double-booking.
func (c *requestCommandsImpl) Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error) {
	snap, err := c.requestSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.Status != request.StatusPending {
		return nil, ErrRequestConflict
	}

	itemSnap, err := c.reads.ItemByID(ctx, snap.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if itemSnap.Status == item.StatusBooked {
		return nil, ErrItemUnavailable
	}

	returnTime := request.ParseDuration(snap.Duration, c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		rows, err := c.requestRepo.Approve(ctx, db, id, returnTime)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			return ErrRequestConflict
		}

		rows, err = c.itemRepo.Book(ctx, db, snap.ItemID, returnTime)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			return ErrItemUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ApproveResult{ReturnTime: returnTime, Duration: snap.Duration}, nil
}

// Complete settles an approved request: the borrower's reward is
// computed from the stored due time, the item is released, and both
// parties' karma and deal counts are updated, all in one transaction
// with the request row written first. A second completion finds the
// status already changed and fails without re-applying karma.
func (c *requestCommandsImpl) Complete(ctx context.Context, id uuid.UUID, rating *int) (*CompleteResult, error) {
	snap, err := c.requestSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.Status == request.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if snap.Status != request.StatusApproved {
		return nil, ErrRequestConflict
	}

	finalRating := ptr.Deref(rating, request.DefaultRating)
	if err := request.ValidateRating(finalRating); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	now := c.clock.Now()
	// A request approved before due-time tracking existed has no
	// return time; treat it as due now, which settles as on time.
	due := now
	if snap.ReturnTime != nil {
		due = *snap.ReturnTime
	}
	settlement := request.Settle(due, now)

	err = c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		rows, err := c.requestRepo.Complete(ctx, db, id, shared.CompleteWrite{
			Rating:             finalRating,
			CompletedAt:        now,
			ExcessTime:         settlement.Label,
			FinalBorrowerKarma: settlement.BorrowerKarma,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			return ErrAlreadyCompleted
		}

		if _, err := c.itemRepo.Release(ctx, db, snap.ItemID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.userRepo.ApplySettlement(ctx, db, snap.BorrowerEmail, settlement.BorrowerKarma); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.userRepo.ApplySettlement(ctx, db, snap.LenderEmail, request.LenderKarma); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CompleteResult{
		ExcessTime:    settlement.Label,
		BorrowerKarma: settlement.BorrowerKarma,
	}, nil
}

// Reject moves pending→rejected. No item or karma side effects; a
// terminal or already-approved request fails the conditional write.
func (c *requestCommandsImpl) Reject(ctx context.Context, id uuid.UUID) error {
	snap, err := c.requestSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if snap.Status != request.StatusPending {
		return ErrRequestConflict
	}

	return c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		rows, err := c.requestRepo.Reject(ctx, db, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			return ErrRequestConflict
		}
		return nil
	})
}

func (c *requestCommandsImpl) requestSnapshot(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, err := c.reads.RequestByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRequestNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}
