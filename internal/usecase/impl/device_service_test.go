package impl

import (
	"context"
	"testing"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	mockRepo "licensing/internal/mocks/repository"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "web",
	}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, principal, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	_, err := fx.service.RegisterDevice(context.Background(), principal, &usecase.DeviceInfo{DeviceID: "device-123"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterDevice(context.Background(), principal, &usecase.DeviceInfo{FCMToken: "t"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterDevice(context.Background(), principal, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "blackberry"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, principal, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: entity.DevicePlatformAndroid})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to create device")
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: principal.UserID}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	err := fx.service.UpdateFCMToken(ctx, principal, deviceID, "new-fcm-token")
	require.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, principal, deviceID, "new-fcm-token")
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: principal.UserID, IsActive: true},
		{ID: uuid.New(), UserID: principal.UserID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, principal.UserID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: principal.UserID, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, principal, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_OtherUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New(), IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, principal, deviceID)
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
