package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID           uuid.UUID       `gorm:"type:uuid;not null;unique"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Location          *string         `gorm:"type:varchar(255);unique"`
	JustificationText string          `gorm:"type:text;not null"`
	Status            string          `gorm:"type:varchar(30);not null;index"`
	AdminFeedback     string          `gorm:"type:text;not null"`
	ContractFee       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RentFee           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);unique;not null"`
	Available bool      `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
