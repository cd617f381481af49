package request

type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price" binding:"min=0"`
	PriceUnit   string  `json:"price_unit" binding:"required,oneof=Hour Day"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}
