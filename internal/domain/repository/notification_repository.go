// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotificationsByRecipient returns the newest notifications of a recipient.
	ListNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkNotificationRead sets read = true when recipientID owns the notification.
	// Returns ErrNotificationNotFound otherwise.
	MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error

	// BatchCreateNotificationLogs persists multiple push log entries in a batch.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
