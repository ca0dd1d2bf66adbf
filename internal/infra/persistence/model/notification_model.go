package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RecipientID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Message     string            `gorm:"type:text;not null"`
	Type        string            `gorm:"type:varchar(20);not null"`
	Read        bool              `gorm:"not null;default:false"`
	Link        string            `gorm:"type:varchar(512);not null"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents a log entry for a single push attempt to a user device.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'sent'"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
