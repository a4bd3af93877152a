package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/models"
)

// ErrNotFound is returned when a lookup or targeted update matches no
// record. Store implementations translate their driver's not-found
// error into this one.
var ErrNotFound = errors.New("record not found")

// UserStore is the query/update contract for user records. Services
// depend on this interface, not on the database.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Update applies the given column values to one user and returns
	// ErrNotFound when the id matches nothing.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	List(ctx context.Context, limit int) ([]models.User, error)
}

// ReportStore persists shift reports.
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// ListAll and ListByAuthor return most-recent-first, capped at limit.
	ListAll(ctx context.Context, limit int) ([]models.Report, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]models.Report, error)
}

// BroadcastStore persists emergency broadcasts. Broadcasts are
// append-only; there is no read path in scope.
type BroadcastStore interface {
	Create(ctx context.Context, broadcast *models.EmergencyBroadcast) error
}
