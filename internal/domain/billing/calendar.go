// Package billing holds the date and obligation rules of contract and rent billing.
// Everything here is a pure function of its inputs.
package billing

import (
	"math"
	"time"
)

// DefaultDueDay is the day of month rent falls due.
const DefaultDueDay = 5

const day = 24 * time.Hour

// RentMonth returns the first instant of t's calendar month in UTC.
func RentMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves a rent month by n calendar months.
func AddMonths(month time.Time, n int) time.Time {
	return time.Date(month.Year(), month.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// DueDate returns the due date of a rent month.
func DueDate(month time.Time, dueDay int) time.Time {
	if dueDay < 1 {
		dueDay = DefaultDueDay
	}

	return time.Date(month.Year(), month.Month(), dueDay, 0, 0, 0, 0, time.UTC)
}

// ContractExpiry advances paidAt by one calendar year keeping month, day and clock.
// A Feb 29 payment expires on Feb 28 of the following year.
func ContractExpiry(paidAt time.Time) time.Time {
	year, month, dom := paidAt.Date()
	target := year + 1

	if last := daysIn(target, month, paidAt.Location()); dom > last {
		dom = last
	}

	return time.Date(target, month, dom,
		paidAt.Hour(), paidAt.Minute(), paidAt.Second(), paidAt.Nanosecond(), paidAt.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// DaysUntil is the number of days left until t, rounded up. Zero or less once t has passed.
func DaysUntil(now, t time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(day)))
}

// DaysOverdue is the number of whole days elapsed since t, rounded down.
func DaysOverdue(now, t time.Time) int {
	return int(math.Floor(float64(now.Sub(t)) / float64(day)))
}
