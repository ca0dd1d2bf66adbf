package billing

import (
	"iter"
	"time"

	"licensing/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ScheduleLength is the number of months a rent schedule looks ahead, current month included.
const ScheduleLength = 3

// ScheduleEntry is one upcoming rent obligation.
type ScheduleEntry struct {
	Month   time.Time         `json:"month"`
	Amount  decimal.Decimal   `json:"amount"`
	Status  entity.RentStatus `json:"status"`
	DueDate time.Time         `json:"dueDate"`
}

// Schedule yields the next ScheduleLength months starting at now's month.
// Status comes from the stored rent of that month, pending when none exists.
// The sequence can be ranged over any number of times.
func Schedule(now time.Time, fee decimal.Decimal, dueDay int, rents []*entity.Rent) iter.Seq[ScheduleEntry] {
	byMonth := make(map[time.Time]entity.RentStatus, len(rents))
	for _, r := range rents {
		byMonth[RentMonth(r.Month)] = r.Status
	}

	start := RentMonth(now)

	return func(yield func(ScheduleEntry) bool) {
		for i := range ScheduleLength {
			month := AddMonths(start, i)

			status, ok := byMonth[month]
			if !ok {
				status = entity.RentStatusPending
			}

			entry := ScheduleEntry{
				Month:   month,
				Amount:  fee,
				Status:  status,
				DueDate: DueDate(month, dueDay),
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// ScheduleWindow returns the [from, to) month range covered by Schedule at now.
func ScheduleWindow(now time.Time) (from, to time.Time) {
	from = RentMonth(now)

	return from, AddMonths(from, ScheduleLength)
}
