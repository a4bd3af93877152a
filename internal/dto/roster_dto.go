package dto

import "github.com/google/uuid"

// RosterEntry is one user's row in the status-grouped roster.
type RosterEntry struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Phone         *string   `json:"phone"`
	ServiceNumber *string   `json:"service_number"`
	Rank          *string   `json:"rank"`
	Department    *string   `json:"department"`
	Status        string    `json:"status"`
	IsOnline      bool      `json:"is_online"`
	OnlineStatus  string    `json:"online_status"`
	LastActivity  *string   `json:"last_activity"`
}
