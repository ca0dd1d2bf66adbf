package impl

import (
	"context"
	"fmt"
	"testing"

	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	mockRepo "licensing/internal/mocks/repository"
	mockSvc "licensing/internal/mocks/service"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	publisher        *mockSvc.MockEventPublisher
	pushSvc          *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		pushSvc:          mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
		Publisher:        fx.publisher,
		PushSvc:          fx.pushSvc,
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestNotificationService_Notify_PersistsThenPublishes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	recipient := uuid.New()

	var stored *entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { stored = n }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.RequestID == "req-1" &&
				e.RecipientID == recipient.String() &&
				e.NotificationID == stored.ID.String() &&
				e.Type == "warning"
		})).
		Return(nil)

	notification, err := fx.service.Notify(ctx, &usecase.NotifyInput{
		RecipientID: recipient,
		Title:       "Rent due",
		Message:     "Pay soon",
		Type:        entity.NotificationTypeWarning,
	})
	require.NoError(t, err)
	assert.False(t, notification.Read)
	assert.Equal(t, recipient, notification.RecipientID)
}

func TestNotificationService_Notify_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	notification, err := fx.service.Notify(ctx, &usecase.NotifyInput{RecipientID: uuid.New(), Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeInfo, notification.Type)
}

func TestNotificationService_Notify_StoreFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := fx.service.Notify(ctx, &usecase.NotifyInput{RecipientID: uuid.New(), Title: "t"})
	require.Error(t, err)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		ListNotificationsByRecipient(ctx, principal.UserID, notificationListLimit).
		Return([]*entity.Notification{{ID: id}}, nil)
	fx.notificationRepo.EXPECT().MarkNotificationRead(ctx, id, principal.UserID).Return(nil)

	list, err := fx.service.ListNotifications(ctx, principal)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, fx.service.MarkRead(ctx, principal, id))
}

func TestNotificationService_MarkRead_NotRecipient(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	id := uuid.New()

	fx.notificationRepo.EXPECT().MarkNotificationRead(ctx, id, principal.UserID).Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, principal, id)
	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_PushConfig(t *testing.T) {
	fx := createTestNotificationService(t)

	assert.Equal(t, "push-public-key", fx.service.PushConfig(context.Background()).PublicKey)
}

func TestNotificationService_DeliverPush_BatchesAndDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient := uuid.New()
	event := &service.NotificationEvent{
		NotificationID: uuid.NewString(),
		RecipientID:    recipient.String(),
		Title:          "Hello",
		Message:        "World",
		Type:           "info",
	}

	devices := make([]*entity.UserDevice, 0, service.MaxPushBatch+2)
	for i := range service.MaxPushBatch + 2 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: recipient, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}
	invalid := devices[service.MaxPushBatch+1]

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).Return(devices, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxPushBatch }), mock.MatchedBy(func(msg service.PushMessage) bool { return msg.Title == "Hello" && msg.Body == "World" })).
		Return(&service.PushResult{Sent: service.MaxPushBatch}, nil).Once()
	fx.pushSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 2 }), mock.Anything).
		Return(&service.PushResult{Sent: 1, Failed: 1, InvalidTokens: []string{invalid.FCMToken}}, nil).Once()
	fx.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			failed := 0
			for _, l := range logs {
				if l.Status == "failed" {
					failed++
				}
			}

			return len(logs) == len(devices) && failed == 1
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, invalid.ID).Return(nil)

	report, err := fx.service.DeliverPush(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, len(devices), report.Devices)
	assert.Equal(t, service.MaxPushBatch+1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestNotificationService_DeliverPush_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).Return(nil, nil)

	report, err := fx.service.DeliverPush(ctx, &service.NotificationEvent{NotificationID: uuid.NewString(), RecipientID: recipient.String()})
	require.NoError(t, err)
	assert.Zero(t, report.Devices)
}

func TestNotificationService_DeliverPush_RepositoryFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).Return(nil, errors.New("db down"))

	_, err := fx.service.DeliverPush(ctx, &service.NotificationEvent{NotificationID: uuid.NewString(), RecipientID: recipient.String()})
	require.Error(t, err)
}

func TestNotificationService_DeliverPush_MalformedEvent(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.DeliverPush(context.Background(), &service.NotificationEvent{RecipientID: "nope"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
