package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role is advisory except for "admin", which unlocks
// cross-author report access.
const (
	RoleAdmin     = "admin"
	RolePolice    = "police"
	RoleCommunity = "community"
	RoleTrainee   = "trainee"
)

// DefaultStatus is the operational status assigned at registration.
// Status is a free-form string, not an enum; the roster buckets by it.
const DefaultStatus = "on duty"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username string    `gorm:"not null;size:255" json:"username"`

	// PasswordHash is the canonical digest column. LegacyPasswordHash
	// mirrors the historical column name; reads probe both, writes go
	// to the canonical column only.
	PasswordHash       string `gorm:"column:password_hash" json:"-"`
	LegacyPasswordHash string `gorm:"column:hashed_password" json:"-"`

	Role          string  `gorm:"size:20;not null;default:'police'" json:"role"`
	BadgeNumber   *string `gorm:"size:50" json:"badge_number,omitempty"`
	Department    *string `gorm:"size:100" json:"department,omitempty"`
	Phone         *string `gorm:"size:50" json:"phone,omitempty"`
	ServiceNumber *string `gorm:"size:50" json:"service_number,omitempty"`
	Rank          *string `gorm:"size:100" json:"rank,omitempty"`
	Status        string  `gorm:"size:100;not null;default:'on duty'" json:"status"`
	Photo         *string `gorm:"type:text" json:"photo,omitempty"`
	IsActive      bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
