package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RegisterRequest payload.
type RegisterRequest struct {
	Name     string      `json:"nome"`
	Email    string      `json:"email"`
	Password string      `json:"senha"`
	Role     domain.Role `json:"role"`
	SectorID int64       `json:"setor_id"`
	Title    string      `json:"cargo"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// UserResponse is the wire shape of a user, password hash excluded.
type UserResponse struct {
	ID       int64       `json:"id"`
	Name     string      `json:"nome"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	SectorID int64       `json:"setor_id"`
	Title    string      `json:"cargo"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// FromUser maps a domain user to its response shape.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		SectorID: user.SectorID,
		Title:    user.Title,
	}
}
