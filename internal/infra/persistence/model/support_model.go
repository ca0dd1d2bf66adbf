package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttachmentValue is one element of the jsonb attachments column.
type AttachmentValue struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
}

// TicketModel mirrors the 'tickets' table.
type TicketModel struct {
	ID                uuid.UUID                            `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID                            `gorm:"type:uuid;not null;index"`
	Subject           string                               `gorm:"type:varchar(255);not null"`
	Description       string                               `gorm:"type:text;not null"`
	Attachments       datatypes.JSONSlice[AttachmentValue] `gorm:"type:jsonb;not null"`
	Status            string                               `gorm:"type:varchar(20);not null;index"`
	AssignedTo        *uuid.UUID                           `gorm:"type:uuid"`
	ResolutionComment *string                              `gorm:"type:text"`
	ResolvedAt        *time.Time
	ResolvedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}

// UserReportModel mirrors the 'user_reports' table.
type UserReportModel struct {
	ID                uuid.UUID                            `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReporterID        uuid.UUID                            `gorm:"type:uuid;not null;index"`
	ReportedUserID    uuid.UUID                            `gorm:"type:uuid;not null"`
	Subject           string                               `gorm:"type:varchar(255);not null"`
	Description       string                               `gorm:"type:text;not null"`
	Attachments       datatypes.JSONSlice[AttachmentValue] `gorm:"type:jsonb;not null"`
	Status            string                               `gorm:"type:varchar(20);not null"`
	ResolutionComment *string                              `gorm:"type:text"`
	ResolvedAt        *time.Time
	ResolvedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Reporter     *UserModel `gorm:"foreignKey:ReporterID"`
	ReportedUser *UserModel `gorm:"foreignKey:ReportedUserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserReportModel) TableName() string {
	return "user_reports"
}
