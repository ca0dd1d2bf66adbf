package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractModel mirrors the 'contracts' table. A partial unique index keeps
// one non-expired contract per business.
type ContractModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentDate    *time.Time
	Expiry         *time.Time
	OrderReference string `gorm:"type:varchar(255);not null"`
	TransactionID  string `gorm:"type:varchar(255);not null"`
	PaymentMethod  string `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContractModel) TableName() string {
	return "contracts"
}

// RentModel mirrors the 'rents' table. (business_id, month) is unique.
type RentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:rents_business_month_key"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Month          time.Time       `gorm:"type:date;not null;uniqueIndex:rents_business_month_key"`
	Status         string          `gorm:"type:varchar(20);not null"`
	PaymentDate    *time.Time
	OrderReference string `gorm:"type:varchar(255);not null"`
	TransactionID  string `gorm:"type:varchar(255);not null"`
	PaymentMethod  string `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RentModel) TableName() string {
	return "rents"
}
