package usecase

import (
	"context"
	"time"

	"licensing/internal/domain/entity"
	"licensing/internal/domain/service"

	"github.com/google/uuid"
)

// NotifyInput describes an in-app notification triggered by a workflow transition.
type NotifyInput struct {
	RecipientID uuid.UUID
	Title       string
	Message     string
	Type        entity.NotificationType
	Link        string
	Metadata    map[string]any
}

// PushConfig is what a client needs to subscribe to push messages.
type PushConfig struct {
	PublicKey string `json:"publicKey"`
}

// NotificationUsecase defines the interface for notification use cases
type NotificationUsecase interface {
	// Notify persists the notification and then publishes it for push delivery.
	// Publishing is best-effort and never fails the call.
	Notify(ctx context.Context, input *NotifyInput) (*entity.Notification, error)

	// ListNotifications returns the caller's newest notifications.
	ListNotifications(ctx context.Context, principal entity.Principal) ([]*entity.Notification, error)

	// MarkRead marks one of the caller's notifications as read.
	MarkRead(ctx context.Context, principal entity.Principal, notificationID uuid.UUID) error

	// PushConfig returns the public push configuration.
	PushConfig(ctx context.Context) *PushConfig

	// DeliverPush sends a published notification to the recipient's active devices.
	// Only storage failures are returned; provider failures are logged and counted.
	DeliverPush(ctx context.Context, event *service.NotificationEvent) (*PushReport, error)
}

// PushReport counts the outcome of one push delivery.
type PushReport struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// SweepReport counts what a scheduled sweep did.
type SweepReport struct {
	Scanned int `json:"scanned"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// ReminderUsecase runs the scheduled reminder sweeps. Per-item failures are logged and counted.
type ReminderUsecase interface {
	// SweepContractExpiry reminds owners whose paid contract expires in 30, 14, 7, 3 or 1 days.
	SweepContractExpiry(ctx context.Context, now time.Time) (*SweepReport, error)

	// SweepRent sends pre-due reminders and overdue notices for the current rent month.
	SweepRent(ctx context.Context, now time.Time) (*SweepReport, error)
}
