package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceID identifies this installation; generated once and persisted.
type DeviceID string

// ActiveNotification maps a zone to the handle of its undismissed notification,
// so that leaving the zone can dismiss exactly that notification.
type ActiveNotification struct {
	Handle       string    `json:"handle"`         // Delivery handle returned by the notification sink.
	AlertPointID string    `json:"alert_point_id"` // The zone this notification belongs to.
	DeliveredAt  time.Time `json:"delivered_at"`   // Timestamp of the delivery.
}

// HistoryItem is an append-only audit record of a delivered entry notification.
type HistoryItem struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the record.
	DeviceID     DeviceID  `json:"device_id"`      // The installation that received the notification.
	AlertPointID string    `json:"alert_point_id"` // The zone that triggered the notification.
	AlertType    string    `json:"alert_type"`     // Zone category at delivery time.
	Street       string    `json:"street"`         // Zone street at delivery time.
	City         string    `json:"city"`           // Zone city at delivery time.
	NotifiedAt   time.Time `json:"notified_at"`    // Timestamp of the triggering location sample.
	CreatedAt    time.Time `json:"created_at"`     // Timestamp of when this record was created.
}
