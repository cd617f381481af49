package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingItem     = errors.New("item reference is required")
	ErrMissingLender   = errors.New("lender email is required")
	ErrMissingBorrower = errors.New("borrower email is required")
	ErrSelfBorrow      = errors.New("borrower and lender cannot be the same user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// BorrowRequest is the transaction record the lifecycle engine
// exclusively mutates. itemTitle is a snapshot taken at creation and is
// intentionally never re-synced with later item edits.
type BorrowRequest struct {
	id            uuid.UUID
	itemID        uuid.UUID
	itemTitle     string
	lenderEmail   string
	borrowerEmail string
	borrowerPhone string
	message       string
	duration      string
	status        Status
	returnTime    *time.Time
	excessTime    *string
	finalKarma    *int
	rating        *int
	createdAt     time.Time
	completedAt   *time.Time
}

func NewBorrowRequest(
	itemID uuid.UUID,
	itemTitle, lenderEmail, borrowerEmail, borrowerPhone, message, duration string,
	now time.Time,
) (*BorrowRequest, error) {
	if itemID == uuid.Nil {
		return nil, ErrMissingItem
	}
	lenderEmail = strings.TrimSpace(strings.ToLower(lenderEmail))
	borrowerEmail = strings.TrimSpace(strings.ToLower(borrowerEmail))
	if lenderEmail == "" {
		return nil, ErrMissingLender
	}
	if borrowerEmail == "" {
		return nil, ErrMissingBorrower
	}
	if lenderEmail == borrowerEmail {
		return nil, ErrSelfBorrow
	}

	return &BorrowRequest{
		id:            uuid.New(),
		itemID:        itemID,
		itemTitle:     itemTitle,
		lenderEmail:   lenderEmail,
		borrowerEmail: borrowerEmail,
		borrowerPhone: borrowerPhone,
		message:       message,
		duration:      NormalizeDuration(duration),
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructBorrowRequest(
	id, itemID uuid.UUID,
	itemTitle, lenderEmail, borrowerEmail, borrowerPhone, message, duration string,
	status Status,
	returnTime *time.Time,
	excessTime *string,
	finalKarma, rating *int,
	createdAt time.Time,
	completedAt *time.Time,
) *BorrowRequest {
	return &BorrowRequest{
		id:            id,
		itemID:        itemID,
		itemTitle:     itemTitle,
		lenderEmail:   lenderEmail,
		borrowerEmail: borrowerEmail,
		borrowerPhone: borrowerPhone,
		message:       message,
		duration:      duration,
		status:        status,
		returnTime:    returnTime,
		excessTime:    excessTime,
		finalKarma:    finalKarma,
		rating:        rating,
		createdAt:     createdAt,
		completedAt:   completedAt,
	}
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

func (r *BorrowRequest) ID() uuid.UUID           { return r.id }
func (r *BorrowRequest) ItemID() uuid.UUID       { return r.itemID }
func (r *BorrowRequest) ItemTitle() string       { return r.itemTitle }
func (r *BorrowRequest) LenderEmail() string     { return r.lenderEmail }
func (r *BorrowRequest) BorrowerEmail() string   { return r.borrowerEmail }
func (r *BorrowRequest) BorrowerPhone() string   { return r.borrowerPhone }
func (r *BorrowRequest) Message() string         { return r.message }
func (r *BorrowRequest) Duration() string        { return r.duration }
func (r *BorrowRequest) Status() Status          { return r.status }
func (r *BorrowRequest) ReturnTime() *time.Time  { return r.returnTime }
func (r *BorrowRequest) ExcessTime() *string     { return r.excessTime }
func (r *BorrowRequest) FinalKarma() *int        { return r.finalKarma }
func (r *BorrowRequest) Rating() *int            { return r.rating }
func (r *BorrowRequest) CreatedAt() time.Time    { return r.createdAt }
func (r *BorrowRequest) CompletedAt() *time.Time { return r.completedAt }
