package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BorrowRequestResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ItemID             uuid.UUID  `json:"itemId"`
	ItemTitle          string     `json:"itemTitle"`
	LenderEmail        string     `json:"lenderEmail"`
	BorrowerEmail      string     `json:"borrowerEmail"`
	BorrowerPhone      string     `json:"borrowerPhone"`
	Message            string     `json:"message"`
	Duration           string     `json:"duration"`
	Status             string     `json:"status"`
	ReturnTime         *time.Time `json:"returnTime,omitempty"`
	ExcessTime         *string    `json:"excessTime,omitempty"`
	FinalBorrowerKarma *int       `json:"finalBorrowerKarma,omitempty"`
	Rating             *int       `json:"rating,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

type BorrowRequestListResponse struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"itemId"`
	ItemTitle        string     `json:"itemTitle"`
	Status           string     `json:"status"`
	Duration         string     `json:"duration"`
	Message          string     `json:"message"`
	CounterpartName  string     `json:"counterpartName"`
	CounterpartPhone *string    `json:"counterpartPhone,omitempty"`
	ReturnTime       *time.Time `json:"returnTime,omitempty"`
	ExcessTime       *string    `json:"excessTime,omitempty"`
	Rating           *int       `json:"rating,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type ApproveResponse struct {
	ReturnTime time.Time `json:"returnTime"`
	Duration   string    `json:"duration"`
}

type CompleteResponse struct {
	ExcessTime    string `json:"excessTime"`
	BorrowerKarma int    `json:"borrowerKarmaEarned"`
}

func FromRequestView(view *queries.RequestView) *BorrowRequestResponse {
	var resp BorrowRequestResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRequestListItem(item *queries.RequestListItem) *BorrowRequestListResponse {
	var resp BorrowRequestListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}
