package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus is the payment state of a contract fee.
type ContractStatus string

const (
	ContractStatusPending ContractStatus = "pending"
	ContractStatusPaid    ContractStatus = "paid"
	ContractStatusExpired ContractStatus = "expired"
)

// RentStatus is the payment state of one month of rent.
type RentStatus string

const (
	RentStatusPending RentStatus = "pending"
	RentStatusPaid    RentStatus = "paid"
	RentStatusOverdue RentStatus = "overdue"
)

// PaymentMethod is the rail a payment was made on.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
)

// IsValid checks if the method is a supported payment rail.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodMobile
}

// Contract is the one-time fee a business pays before it can accrue rent.
type Contract struct {
	ID             uuid.UUID       `json:"id"`
	BusinessID     uuid.UUID       `json:"businessId"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	Status         ContractStatus  `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    *time.Time      `json:"paymentDate"`
	Expiry         *time.Time      `json:"expiry"`
	OrderReference string          `json:"orderReference,omitempty"` // Card rail polling key.
	TransactionID  string          `json:"transactionId,omitempty"`  // Mobile rail polling key.
	PaymentMethod  PaymentMethod   `json:"paymentMethod,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsPaid reports whether the contract fee has been settled.
func (c *Contract) IsPaid() bool {
	return c.Status == ContractStatusPaid
}

// Rent is the fee for a single calendar month. (BusinessID, Month) is unique.
type Rent struct {
	ID             uuid.UUID       `json:"id"`
	BusinessID     uuid.UUID       `json:"businessId"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	Amount         decimal.Decimal `json:"amount"`
	Month          time.Time       `json:"month"` // First day of the month, UTC.
	Status         RentStatus      `json:"status"`
	PaymentDate    *time.Time      `json:"paymentDate"`
	OrderReference string          `json:"orderReference,omitempty"`
	TransactionID  string          `json:"transactionId,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsPaid reports whether the month has been settled.
func (r *Rent) IsPaid() bool {
	return r.Status == RentStatusPaid
}

// Period formats the rent month as YYYY-MM.
func (r *Rent) Period() string {
	return r.Month.Format("2006-01")
}

// PaymentKind tells which obligation a payment reference belongs to.
type PaymentKind string

const (
	PaymentKindContract PaymentKind = "contract"
	PaymentKindRent     PaymentKind = "rent"
)

// PaymentOutcome is the normalized state reported by the payment provider.
type PaymentOutcome string

const (
	PaymentOutcomePaid    PaymentOutcome = "paid"
	PaymentOutcomePending PaymentOutcome = "pending"
	PaymentOutcomeFailed  PaymentOutcome = "failed"
	PaymentOutcomeUnknown PaymentOutcome = "unknown"
)

// IsTerminal reports whether polling can stop.
func (o PaymentOutcome) IsTerminal() bool {
	return o == PaymentOutcomePaid || o == PaymentOutcomeFailed
}
