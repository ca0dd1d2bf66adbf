package service

import (
	"context"
	"encoding/json"

	"licensing/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderRequest asks the provider for a hosted card payment page.
type OrderRequest struct {
	Amount      decimal.Decimal
	RedirectURL string
	CancelURL   string
	CancelText  string
}

// Order is a created card payment.
type Order struct {
	Reference      string
	PaymentPageURL string
}

// MobilePayment is an accepted mobile money push request.
type MobilePayment struct {
	TransactionID string
	Message       string
}

// PaymentResult is the provider status normalized to one shape.
type PaymentResult struct {
	Outcome entity.PaymentOutcome
	// ProviderReference is the provider side receipt, e.g. the mobile money id.
	ProviderReference string
	Message           string
	// Raw is the provider payload, passed through untouched.
	Raw json.RawMessage
}

// PaymentGateway initiates and polls payments with the external provider.
// Implementations never retry; transport and provider failures surface as retryable errors.
type PaymentGateway interface {
	// CreateOrder starts a card payment and returns the page the user is redirected to.
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)

	// CheckOrder polls a card order by reference.
	CheckOrder(ctx context.Context, reference string) (*PaymentResult, error)

	// CreateMobilePayment pushes a payment prompt to a normalized phone number.
	CreateMobilePayment(ctx context.Context, amount decimal.Decimal, phone string) (*MobilePayment, error)

	// CheckMobilePayment polls a mobile payment by transaction id.
	CheckMobilePayment(ctx context.Context, transactionID string) (*PaymentResult, error)
}
