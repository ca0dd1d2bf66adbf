package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores push subscriptions.
type DeviceRepository interface {
	// CreateDevice upserts on (user, device id): a known client device gets its token refreshed.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// UpdateFCMToken also reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
