package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RequestView struct {
	ID                 uuid.UUID  `json:"id"`
	ItemID             uuid.UUID  `json:"item_id"`
	ItemTitle          string     `json:"item_title"`
	LenderEmail        string     `json:"lender_email"`
	BorrowerEmail      string     `json:"borrower_email"`
	BorrowerPhone      string     `json:"borrower_phone"`
	Message            string     `json:"message"`
	Duration           string     `json:"duration"`
	Status             string     `json:"status"`
	ReturnTime         *time.Time `json:"return_time,omitempty"`
	ExcessTime         *string    `json:"excess_time,omitempty"`
	FinalBorrowerKarma *int       `json:"final_borrower_karma,omitempty"`
	Rating             *int       `json:"rating,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// RequestListItem is one row of the owner/borrower request lists,
// enriched with the counterpart user's display name (and phone, for the
// borrower's view of the lender).
type RequestListItem struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"item_id"`
	ItemTitle        string     `json:"item_title"`
	Status           string     `json:"status"`
	Duration         string     `json:"duration"`
	Message          string     `json:"message"`
	CounterpartName  string     `json:"counterpart_name"`
	CounterpartPhone *string    `json:"counterpart_phone,omitempty"`
	ReturnTime       *time.Time `json:"return_time,omitempty"`
	ExcessTime       *string    `json:"excess_time,omitempty"`
	Rating           *int       `json:"rating,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	PriceUnit   string     `json:"price_unit"`
	Status      string     `json:"status"`
	Longitude   float64    `json:"longitude"`
	Latitude    float64    `json:"latitude"`
	OwnerEmail  string     `json:"owner_email"`
	ReturnTime  *time.Time `json:"return_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UserProfileView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	Role         string    `json:"role"`
	Karma        int       `json:"karma"`
	TotalDeals   int       `json:"total_deals"`
	CreatedAt    time.Time `json:"created_at"`
}

// OverdueRiskRow flags borrowers with an unusual number of open
// outgoing requests; recomputed on demand, never maintained
// incrementally.
type OverdueRiskRow struct {
	BorrowerEmail string `json:"borrower_email"`
	PendingCount  int    `json:"pending_count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type MonthlyListingCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}
