package billing

import (
	"slices"
	"time"

	"licensing/internal/domain/entity"
)

// Reminder offsets in days.
var (
	ContractExpiryOffsets = []int{30, 14, 7, 3, 1}
	RentDueOffsets        = []int{5, 3, 1}
	RentOverdueOffsets    = []int{1, 3, 7, 14}
)

// ContractExpiryWindow is how far ahead the expiry sweep looks.
const ContractExpiryWindow = 30 * day

// Evaluate reports the payment issues of a business from its latest contract and latest rent.
// Either may be nil.
func Evaluate(contract *entity.Contract, lastRent *entity.Rent, now time.Time, dueDay int) entity.PaymentIssues {
	issues := entity.PaymentIssues{
		ContractUnpaid: contract == nil || !contract.IsPaid(),
	}

	if contract != nil {
		amount := contract.Amount
		issues.ContractAmount = &amount
	}

	if lastRent != nil {
		due := DueDate(lastRent.Month, dueDay)
		amount := lastRent.Amount
		issues.LastRentDueDate = &due
		issues.RentAmount = &amount
		issues.RentOverdue = !lastRent.IsPaid() && due.Before(now)
	}

	return issues
}

// ShouldRemindExpiry reports whether a contract expiring at expiry is due a reminder today.
func ShouldRemindExpiry(now, expiry time.Time) (daysLeft int, ok bool) {
	daysLeft = DaysUntil(now, expiry)

	return daysLeft, slices.Contains(ContractExpiryOffsets, daysLeft)
}

// RentNoticeKind classifies a rent reminder.
type RentNoticeKind int

const (
	RentNoticeNone RentNoticeKind = iota
	RentNoticeUpcoming
	RentNoticeOverdue
)

// RentNotice decides which rent reminder, if any, fires today for a month due on due.
// days is the day count that matched.
func RentNotice(now, due time.Time) (kind RentNoticeKind, days int) {
	if now.Before(due) {
		days = DaysUntil(now, due)
		if slices.Contains(RentDueOffsets, days) {
			return RentNoticeUpcoming, days
		}

		return RentNoticeNone, days
	}

	days = DaysOverdue(now, due)
	if slices.Contains(RentOverdueOffsets, days) {
		return RentNoticeOverdue, days
	}

	return RentNoticeNone, days
}
