package response

import (
	"time"

	"tech-store/internal/data/entity"
)

// UserResponse is the client-facing user representation. The password
// hash never leaves the service.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	SecondName  string          `json:"second_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        entity.UserRole `json:"role"`
	IsActive    bool            `json:"is_active"`
	IsStaff     bool            `json:"is_staff"`
	DateJoined  time.Time       `json:"date_joined"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FirstName:   user.FirstName,
		SecondName:  user.SecondName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsActive:    user.IsActive,
		IsStaff:     user.IsStaff,
		DateJoined:  user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func AuthToResponse(user *entity.User, accessToken, refreshToken string) *AuthResponse {
	return &AuthResponse{
		User:         UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}
