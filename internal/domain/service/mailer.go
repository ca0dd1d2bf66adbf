package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ContractExpiryMail is the data of a contract expiry reminder.
type ContractExpiryMail struct {
	Username     string
	BusinessName string
	Expiry       time.Time
	DaysLeft     int
}

// RentReminderMail is the data of an upcoming rent reminder.
type RentReminderMail struct {
	Username     string
	BusinessName string
	Amount       decimal.Decimal
	DueDate      time.Time
	DaysUntilDue int
}

// RentOverdueMail is the data of an overdue rent notice.
type RentOverdueMail struct {
	Username     string
	BusinessName string
	Amount       decimal.Decimal
	DueDate      time.Time
	DaysOverdue  int
}

// Mailer renders and sends transactional email. Delivery is best-effort; callers do not retry.
type Mailer interface {
	SendWelcome(ctx context.Context, to, username string) error
	SendPasswordReset(ctx context.Context, to, username, resetLink string) error
	SendTemporaryPassword(ctx context.Context, to, username, password string) error
	SendContractExpiry(ctx context.Context, to string, mail ContractExpiryMail) error
	SendRentReminder(ctx context.Context, to string, mail RentReminderMail) error
	SendRentOverdue(ctx context.Context, to string, mail RentOverdueMail) error
}
