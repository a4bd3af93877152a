package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmergencyBroadcast is an append-only record of an emergency alert.
// Location is stored as supplied, even when malformed; HasGPS only
// records whether a location object was present at all.
type EmergencyBroadcast struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string         `gorm:"size:50;not null" json:"type"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	SenderID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sender_id"`
	SenderName  string         `gorm:"size:255;not null" json:"sender_name"`
	SenderBadge string         `gorm:"size:50" json:"sender_badge"`
	Location    datatypes.JSON `gorm:"type:jsonb" json:"location,omitempty"`

	LocationStatus string `gorm:"size:255" json:"location_status"`
	HasGPS         bool   `gorm:"not null" json:"has_gps"`
	Priority       string `gorm:"size:20;not null" json:"priority"`
	Recipients     string `gorm:"size:50;not null" json:"recipients"`
	Status         string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
