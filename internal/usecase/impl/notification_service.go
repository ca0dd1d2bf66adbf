package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	notificationListLimit = 50
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	publisher        service.EventPublisher
	pushSvc          service.NotificationService
	pushPublicKey    string
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	Publisher        service.EventPublisher      `optional:"true"`
	PushSvc          service.NotificationService `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		publisher:        params.Publisher,
		pushSvc:          params.PushSvc,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Firebase != nil {
		srv.pushPublicKey = params.Config.Firebase.PublicKey
	}

	return srv
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify persists the notification and publishes it for push delivery.
func (s *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) (*entity.Notification, error) {
	kind := input.Type
	if kind == "" {
		kind = entity.NotificationTypeInfo
	}

	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: input.RecipientID,
		Title:       input.Title,
		Message:     input.Message,
		Type:        kind,
		Link:        input.Link,
		Metadata:    input.Metadata,
		CreatedAt:   time.Now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if s.publisher == nil {
		return notification, nil
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		RecipientID:    notification.RecipientID.String(),
		Title:          notification.Title,
		Message:        notification.Message,
		Type:           string(notification.Type),
		Link:           notification.Link,
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish notification event",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err))
	}

	return notification, nil
}

// ListNotifications returns the caller's newest notifications.
func (s *notificationService) ListNotifications(ctx context.Context, principal entity.Principal) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByRecipient(ctx, principal.UserID, notificationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead marks a notification read. Other users' notifications are reported as missing.
func (s *notificationService) MarkRead(ctx context.Context, principal entity.Principal, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, principal.UserID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// PushConfig returns the public push configuration.
func (s *notificationService) PushConfig(_ context.Context) *usecase.PushConfig {
	return &usecase.PushConfig{PublicKey: s.pushPublicKey}
}

// DeliverPush sends the event to every active device of the recipient in provider-sized batches.
func (s *notificationService) DeliverPush(ctx context.Context, event *service.NotificationEvent) (*usecase.PushReport, error) {
	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithField("recipient_id")
	}
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithField("notification_id")
	}

	report := &usecase.PushReport{}

	if s.pushSvc == nil {
		return report, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}
	report.Devices = len(devices)

	if len(devices) == 0 {
		return report, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	msg := service.PushMessage{
		Title: event.Title,
		Body:  event.Message,
		Data: map[string]string{
			"notification_id": event.NotificationID,
			"type":            event.Type,
			"link":            event.Link,
		},
	}

	var (
		invalidTokens    []string
		notificationLogs []*entity.NotificationLog
	)

	for batch := range slices.Chunk(tokens, service.MaxPushBatch) {
		result, err := s.pushSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			s.log(ctx).Warn("Failed to send push batch",
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err))
			report.Failed += len(batch)

			continue
		}

		report.Sent += result.Sent
		report.Failed += result.Failed
		invalidTokens = append(invalidTokens, result.InvalidTokens...)

		sentAt := time.Now()
		for _, token := range batch {
			device := deviceMap[token]
			entry := &entity.NotificationLog{
				ID:             uuid.New(),
				NotificationID: notificationID,
				UserID:         device.UserID,
				DeviceID:       device.ID,
				Status:         "sent",
				SentAt:         sentAt,
			}
			if slices.Contains(result.InvalidTokens, token) {
				entry.Status = "failed"
				entry.ErrorMessage = "invalid or unregistered token"
			}
			notificationLogs = append(notificationLogs, entry)
		}
	}

	if len(notificationLogs) > 0 {
		if err := s.notificationRepo.BatchCreateNotificationLogs(ctx, notificationLogs); err != nil {
			return nil, errors.Wrap(err, "failed to create notification logs")
		}
	}

	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			return nil, errors.Wrap(err, "failed to deactivate invalid device")
		}
		report.InvalidTokens++
	}

	return report, nil
}
