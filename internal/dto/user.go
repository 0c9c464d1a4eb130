package dto

import (
	"time"

	"github.com/underdogsx/coordination-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64            `json:"id"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	Role       string            `json:"role"`
	Department string            `json:"department"`
	Status     models.UserStatus `json:"status"`
	Avatar     *string           `json:"avatar,omitempty"`
	JoinedAt   time.Time         `json:"joined_at"`
	LastActive time.Time         `json:"last_active"`
	Skills     string            `json:"skills"`
	Location   *string           `json:"location"`
	Phone      *string           `json:"phone"`
	IsActive   bool              `json:"is_active"`
}

// TokenResponse is the register/login payload: a bearer token plus the
// authenticated user.
type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Status:     user.Status,
		Avatar:     user.Avatar,
		JoinedAt:   user.JoinedAt,
		LastActive: user.LastActive,
		Skills:     user.Skills,
		Location:   user.Location,
		Phone:      user.Phone,
		IsActive:   user.IsActive,
	}
}

// ToTokenResponse builds the auth payload for a user and signed token.
func ToTokenResponse(token string, user models.User) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ToUserDTO(user),
	}
}

// ToUserDTOs converts a slice of users for list responses
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
