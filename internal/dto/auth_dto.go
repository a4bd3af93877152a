package dto

import "github.com/stadtwache/stadtwache-backend/internal/models"

type RegisterRequest struct {
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Role          string  `json:"role,omitempty"`
	BadgeNumber   *string `json:"badge_number,omitempty"`
	Department    *string `json:"department,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	Photo         *string `json:"photo,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest uses pointers throughout: a nil field is left
// unchanged, not cleared.
type UpdateProfileRequest struct {
	Username      *string `json:"username,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	Department    *string `json:"department,omitempty"`
	Status        *string `json:"status,omitempty"`
	Photo         *string `json:"photo,omitempty"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// ErrorResponse is the uniform error body; the status code is the
// primary machine-readable signal.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
