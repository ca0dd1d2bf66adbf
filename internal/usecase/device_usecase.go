package usecase

import (
	"context"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string                `json:"fcmToken"`
	DeviceID string                `json:"deviceId"`
	Platform entity.DevicePlatform `json:"platform"`
}

// DeviceUsecase manages the push subscriptions of the caller
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, principal entity.Principal, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, principal entity.Principal, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all active devices for the caller
	GetUserDevices(ctx context.Context, principal entity.Principal) ([]*entity.UserDevice, error)

	// DeactivateDevice stops push delivery to a device
	DeactivateDevice(ctx context.Context, principal entity.Principal, deviceID uuid.UUID) error
}
