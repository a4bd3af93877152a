package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report statuses. The progression draft -> submitted -> reviewed is
// advisory; the update path does not enforce it.
const (
	ReportDraft     = "draft"
	ReportSubmitted = "submitted"
	ReportReviewed  = "reviewed"
)

// Report is a shift report. Author name is snapshotted at creation,
// not joined at read time.
type Report struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string         `gorm:"not null;size:500" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	AuthorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	AuthorName string         `gorm:"not null;size:255" json:"author_name"`
	ShiftDate  string         `gorm:"size:50;not null" json:"shift_date"`
	Status     string         `gorm:"size:20;not null;default:'draft'" json:"status"`
	Images     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`

	LastEditedBy     *uuid.UUID     `gorm:"type:uuid" json:"last_edited_by,omitempty"`
	LastEditedByName *string        `gorm:"size:255" json:"last_edited_by_name,omitempty"`
	EditHistory      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"edit_history"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReportEdit is one entry in a report's append-only edit history.
type ReportEdit struct {
	EditorID       uuid.UUID `json:"editor_id"`
	EditorName     string    `json:"editor_name"`
	EditedAt       time.Time `json:"edited_at"`
	PreviousStatus string    `json:"previous_status"`
}
