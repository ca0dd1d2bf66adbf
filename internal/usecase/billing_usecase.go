package usecase

import (
	"context"
	"encoding/json"
	"time"

	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitiatePaymentInput selects the payment rail for a contract or rent payment.
type InitiatePaymentInput struct {
	BusinessID  uuid.UUID
	Method      entity.PaymentMethod
	PhoneNumber string // Required for the mobile rail.
}

// PaymentInitiation tells the client how to continue a started payment.
type PaymentInitiation struct {
	Kind   entity.PaymentKind   `json:"kind"`
	Method entity.PaymentMethod `json:"type"`
	// Period is "contract" or the rent month as YYYY-MM.
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
	// Reference is the polling key: the order reference or the transaction id.
	Reference      string `json:"reference"`
	PaymentPageURL string `json:"paymentPageUrl,omitempty"`
	Message        string `json:"status,omitempty"`
}

// PaymentCheck is the reconciled state of a contract or rent after a status check.
type PaymentCheck struct {
	Outcome     entity.PaymentOutcome `json:"outcome"`
	Kind        entity.PaymentKind    `json:"kind"`
	Period      string                `json:"period"`
	Amount      decimal.Decimal       `json:"amount"`
	PaymentDate *time.Time            `json:"paymentDate,omitempty"`
	Expiry      *time.Time            `json:"expiry,omitempty"`
	Message     string                `json:"message,omitempty"`
	// Provider is the untouched provider payload, empty when no provider call was made.
	Provider json.RawMessage `json:"provider,omitempty"`
}

// FeeStatus is the payment state of one obligation.
type FeeStatus struct {
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"paymentDate"`
}

// PaymentStatusOutput summarizes the contract and current rent month of a business.
type PaymentStatusOutput struct {
	Contract  *FeeStatus `json:"contract"`
	Rent      *FeeStatus `json:"rent"`
	RentMonth time.Time  `json:"rentMonth"`
}

// BillingUsecase tracks what a business owes and reconciles provider payments.
type BillingUsecase interface {
	// InitiateContractPayment creates the contract on first attempt and starts a payment for it.
	InitiateContractPayment(ctx context.Context, principal entity.Principal, input *InitiatePaymentInput) (*PaymentInitiation, error)

	// InitiateRentPayment creates the current month's rent on first attempt and starts a payment for it.
	InitiateRentPayment(ctx context.Context, principal entity.Principal, input *InitiatePaymentInput) (*PaymentInitiation, error)

	// CheckPaymentStatus polls the provider once for reference and applies a success exactly once.
	CheckPaymentStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID, reference string) (*PaymentCheck, error)

	// AwaitPayment repeats CheckPaymentStatus until a terminal outcome or the polling ceiling.
	AwaitPayment(ctx context.Context, principal entity.Principal, businessID uuid.UUID, reference string) (*PaymentCheck, error)

	// RentHistory returns the last twelve rent records, newest month first.
	RentHistory(ctx context.Context, principal entity.Principal, businessID uuid.UUID) ([]*entity.Rent, error)

	// RentSchedule returns the rent obligations of the current and next two months.
	RentSchedule(ctx context.Context, principal entity.Principal, businessID uuid.UUID) ([]billing.ScheduleEntry, error)

	// PaymentStatus reports the contract and the current month's rent.
	PaymentStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID) (*PaymentStatusOutput, error)

	// ActiveContract returns the paid contract of a business.
	ActiveContract(ctx context.Context, principal entity.Principal, businessID uuid.UUID) (*entity.Contract, error)
}

// RevenueUsecase aggregates paid fees for the admin dashboard.
type RevenueUsecase interface {
	TotalRevenue(ctx context.Context, principal entity.Principal) (*entity.Revenue, error)
	UnpaidBusinesses(ctx context.Context, principal entity.Principal) ([]*entity.UnpaidBusiness, error)
}
