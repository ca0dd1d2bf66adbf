package repository

import (
	"context"
	"time"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for billing persistence.
var (
	// ErrContractNotFound is returned when no matching contract exists.
	ErrContractNotFound = errors.New("contract not found")
	// ErrRentNotFound is returned when no matching rent exists.
	ErrRentNotFound = errors.New("rent not found")
)

// PaymentReference is the polling key stored on a pending contract or rent.
type PaymentReference struct {
	Method         entity.PaymentMethod
	OrderReference string
	TransactionID  string
}

// ContractRepository defines the interface for contract persistence.
type ContractRepository interface {
	// FindOrCreateContract inserts contract unless the business already has a non-expired one,
	// and returns the stored row either way.
	FindOrCreateContract(ctx context.Context, contract *entity.Contract) (*entity.Contract, error)

	// FindLatestContract returns the most recently created contract of a business.
	FindLatestContract(ctx context.Context, businessID uuid.UUID) (*entity.Contract, error)

	// FindPaidContract returns the paid contract of a business.
	FindPaidContract(ctx context.Context, businessID uuid.UUID) (*entity.Contract, error)

	// FindContractByReference finds the contract whose order reference or transaction id equals reference.
	FindContractByReference(ctx context.Context, businessID uuid.UUID, reference string) (*entity.Contract, error)

	// SetContractReference stores the polling key while the contract is unpaid.
	SetContractReference(ctx context.Context, id uuid.UUID, ref PaymentReference) error

	// ClearContractTransaction removes a failed mobile transaction id.
	ClearContractTransaction(ctx context.Context, id uuid.UUID, transactionID string) error

	// MarkContractPaid sets status, payment date and expiry if the contract is not already paid.
	// Returns false when another check got there first.
	MarkContractPaid(ctx context.Context, id uuid.UUID, paidAt, expiry time.Time) (bool, error)

	// ListContractsExpiringBetween returns paid contracts with expiry in (from, to].
	ListContractsExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error)

	// SumPaidContracts totals amount over paid contracts.
	SumPaidContracts(ctx context.Context) (decimal.Decimal, error)
}

// RentRepository defines the interface for rent persistence.
type RentRepository interface {
	// FindOrCreateRent inserts rent unless (business, month) exists, and returns the stored row.
	FindOrCreateRent(ctx context.Context, rent *entity.Rent) (*entity.Rent, error)

	// FindRent returns the rent for a business month.
	FindRent(ctx context.Context, businessID uuid.UUID, month time.Time) (*entity.Rent, error)

	// FindLatestRent returns the rent with the latest month for a business.
	FindLatestRent(ctx context.Context, businessID uuid.UUID) (*entity.Rent, error)

	// FindRentByReference finds the rent whose order reference or transaction id equals reference.
	FindRentByReference(ctx context.Context, businessID uuid.UUID, reference string) (*entity.Rent, error)

	// ListRents returns up to limit rents of a business, month descending.
	ListRents(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Rent, error)

	// ListRentsBetween returns rents of a business with month in [from, to).
	ListRentsBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*entity.Rent, error)

	// SetRentReference stores the polling key while the rent is unpaid.
	SetRentReference(ctx context.Context, id uuid.UUID, ref PaymentReference) error

	// ClearRentTransaction removes a failed mobile transaction id.
	ClearRentTransaction(ctx context.Context, id uuid.UUID, transactionID string) error

	// MarkRentPaid sets status and payment date if the rent is not already paid.
	MarkRentPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error)

	// MarkRentOverdue moves a pending rent to overdue.
	MarkRentOverdue(ctx context.Context, id uuid.UUID) error

	// SumPaidRents totals amount over paid rents, restricted to payment_date >= since when non-nil.
	SumPaidRents(ctx context.Context, since *time.Time) (decimal.Decimal, error)
}
