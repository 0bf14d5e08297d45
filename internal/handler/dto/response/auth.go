package response

import (
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type UserResponse struct {
	ID      uuid.UUID  `json:"id"`
	Email   string     `json:"email"`
	Role    string     `json:"role"`
	HotelID *uuid.UUID `json:"hotel_id,omitempty"`
}

func FromAuthorizedUser(u *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Role:    u.Role,
		HotelID: u.HotelID,
	}
}
