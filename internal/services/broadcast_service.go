package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/store"
	"gorm.io/datatypes"
)

// ErrBroadcastFailed is the only caller-visible broadcast failure: the
// store rejected the write. Everything else degrades into log lines.
var ErrBroadcastFailed = errors.New("failed to create emergency broadcast")

// Broadcast defaults. An alert with partial data outranks one that is
// refused, so missing fields are filled in rather than rejected.
const (
	DefaultAlertType      = "sos_alarm"
	DefaultAlertMessage   = "Emergency alert"
	DefaultAlertPriority  = "urgent"
	DefaultLocationStatus = "unknown"

	broadcastRecipients = "all_users"
	broadcastSent       = "sent"
)

type BroadcastService struct {
	broadcasts store.BroadcastStore
}

func NewBroadcastService(broadcasts store.BroadcastStore) *BroadcastService {
	return &BroadcastService{broadcasts: broadcasts}
}

// Broadcast durably records an emergency alert and returns a receipt.
// The location object is stored as supplied; non-numeric coordinates
// are confined to a diagnostic log line and never fail the call.
func (s *BroadcastService) Broadcast(ctx context.Context, sender *models.User, req *dto.BroadcastRequest) (*dto.BroadcastReceipt, error) {
	alertType := req.Type
	if alertType == "" {
		alertType = DefaultAlertType
	}
	message := req.Message
	if message == "" {
		message = DefaultAlertMessage
	}
	priority := req.Priority
	if priority == "" {
		priority = DefaultAlertPriority
	}
	locationStatus := req.LocationStatus
	if locationStatus == "" {
		locationStatus = DefaultLocationStatus
	}

	badge := "N/A"
	if sender.BadgeNumber != nil && *sender.BadgeNumber != "" {
		badge = *sender.BadgeNumber
	}

	hasGPS := req.Location != nil
	var location datatypes.JSON
	if hasGPS {
		if b, err := json.Marshal(req.Location); err == nil {
			location = datatypes.JSON(b)
		}
	}

	record := models.EmergencyBroadcast{
		ID:             uuid.New(),
		Type:           alertType,
		Message:        message,
		SenderID:       sender.ID,
		SenderName:     sender.Username,
		SenderBadge:    badge,
		Location:       location,
		LocationStatus: locationStatus,
		HasGPS:         hasGPS,
		Priority:       priority,
		Recipients:     broadcastRecipients,
		Status:         broadcastSent,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.broadcasts.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBroadcastFailed, err)
	}

	logBroadcast(&record, req.Location, locationStatus)

	return &dto.BroadcastReceipt{
		Success:             true,
		BroadcastID:         record.ID,
		Message:             "Emergency alert broadcast to all team members",
		LocationTransmitted: hasGPS,
		LocationStatus:      locationStatus,
		Timestamp:           record.CreatedAt.Format(time.RFC3339),
	}, nil
}

func logBroadcast(record *models.EmergencyBroadcast, location map[string]interface{}, locationStatus string) {
	if location == nil {
		slog.Info("emergency broadcast sent",
			"broadcast_id", record.ID, "sender", record.SenderName, "gps", locationStatus)
		return
	}

	lat, latOK := coordinate(location["latitude"])
	lng, lngOK := coordinate(location["longitude"])
	if latOK && lngOK {
		accuracy, _ := coordinate(location["accuracy"])
		slog.Info("emergency broadcast sent",
			"broadcast_id", record.ID, "sender", record.SenderName,
			"gps", fmt.Sprintf("%.6f, %.6f (±%.0fm)", lat, lng, accuracy))
		return
	}

	slog.Warn("emergency broadcast sent with invalid coordinates",
		"broadcast_id", record.ID, "sender", record.SenderName)
}

func coordinate(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
