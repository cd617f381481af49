package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	PriceUnit   string     `json:"priceUnit"`
	Status      string     `json:"status"`
	Longitude   float64    `json:"longitude"`
	Latitude    float64    `json:"latitude"`
	OwnerEmail  string     `json:"ownerEmail"`
	ReturnTime  *time.Time `json:"returnTime,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
