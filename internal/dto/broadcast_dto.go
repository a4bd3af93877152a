package dto

import "github.com/google/uuid"

// BroadcastRequest carries an emergency alert. Location is untyped on
// purpose: malformed telemetry must never cause the alert to be
// rejected, so validation happens after the fact, not at decode time.
type BroadcastRequest struct {
	Type           string                 `json:"type,omitempty"`
	Message        string                 `json:"message,omitempty"`
	Priority       string                 `json:"priority,omitempty"`
	Location       map[string]interface{} `json:"location,omitempty"`
	LocationStatus string                 `json:"location_status,omitempty"`
}

type BroadcastReceipt struct {
	Success             bool      `json:"success"`
	BroadcastID         uuid.UUID `json:"broadcast_id"`
	Message             string    `json:"message"`
	LocationTransmitted bool      `json:"location_transmitted"`
	LocationStatus      string    `json:"location_status"`
	Timestamp           string    `json:"timestamp"`
}
