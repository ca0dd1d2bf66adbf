// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the severity shown next to an in-app notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// Notification is an in-app message persisted for a single recipient.
type Notification struct {
	ID          uuid.UUID        `json:"id"`          // The Global Unique Identifier (GUID) for the notification.
	RecipientID uuid.UUID        `json:"recipientId"` // The user this notification belongs to.
	Title       string           `json:"title"`       // Short headline.
	Message     string           `json:"message"`     // Body text.
	Type        NotificationType `json:"type"`        // Severity.
	Read        bool             `json:"read"`        // Set by the recipient only.
	Link        string           `json:"link"`        // Optional front-end route to open.
	Metadata    map[string]any   `json:"metadata"`    // Free-form context, e.g. businessId.
	CreatedAt   time.Time        `json:"createdAt"`   // Timestamp of when this record was created.
}

// NotificationLog represents a log entry for a single push attempt to a user device.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"` // The ID of the notification this log belongs to.
	UserID         uuid.UUID `json:"user_id"`         // The ID of the user who received the notification.
	DeviceID       uuid.UUID `json:"device_id"`       // The ID of the device that received the notification.
	Status         string    `json:"status"`          // The status of the push (sent, failed).
	ErrorMessage   string    `json:"error_message"`   // Error message if the push failed.
	SentAt         time.Time `json:"sent_at"`         // Timestamp of when the push was sent.
}
