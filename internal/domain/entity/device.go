package entity

import (
	"time"

	"github.com/google/uuid"
)

type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	switch p {
	case DevicePlatformIOS, DevicePlatformAndroid, DevicePlatformWeb:
		return true
	}

	return false
}

// UserDevice is one push subscription. A user may hold several, one per client device.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	FCMToken  string         `json:"fcmToken"`
	DeviceID  string         `json:"deviceId"`
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"isActive"` // false once FCM reports the token unregistered
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
