package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBreakdown splits revenue by source.
type RevenueBreakdown struct {
	ContractRevenue      decimal.Decimal `json:"contractRevenue"`
	LastMonthRentRevenue decimal.Decimal `json:"lastMonthRentRevenue"`
	TotalRentRevenue     decimal.Decimal `json:"totalRentRevenue"`
}

// Revenue is computed on demand from paid contracts and rents.
type Revenue struct {
	TotalRevenue decimal.Decimal  `json:"totalRevenue"`
	Breakdown    RevenueBreakdown `json:"breakdown"`
}

// PaymentIssues explains why a business is considered unpaid.
type PaymentIssues struct {
	ContractUnpaid  bool             `json:"contractUnpaid"`
	RentOverdue     bool             `json:"rentOverdue"`
	LastRentDueDate *time.Time       `json:"lastRentDueDate,omitempty"`
	RentAmount      *decimal.Decimal `json:"rentAmount,omitempty"`
	ContractAmount  *decimal.Decimal `json:"contractAmount,omitempty"`
}

// Unpaid reports whether any issue flag is set.
func (p PaymentIssues) Unpaid() bool {
	return p.ContractUnpaid || p.RentOverdue
}

// UnpaidBusiness is one row of the delinquency report.
type UnpaidBusiness struct {
	Business      *Business     `json:"business"`
	PaymentIssues PaymentIssues `json:"paymentIssues"`
}
