package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profileImage"`
	Role         string    `json:"role"`
	Karma        int       `json:"karma"`
	TotalDeals   int       `json:"totalDeals"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  *UserProfileResponse `json:"user"`
}

func FromUserProfileView(view *queries.UserProfileView) *UserProfileResponse {
	var resp UserProfileResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
