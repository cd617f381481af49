package request

import (
	"github.com/google/uuid"
)

type CreateBorrowRequest struct {
	ItemID        uuid.UUID `json:"item_id" binding:"required"`
	LenderEmail   string    `json:"lender_email,omitempty"`
	BorrowerPhone string    `json:"borrower_phone,omitempty"`
	Message       string    `json:"message,omitempty"`
	Duration      string    `json:"duration,omitempty"`
}

type CompleteBorrowRequest struct {
	Rating *int `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
}
