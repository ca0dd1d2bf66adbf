package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestContractExpiry(t *testing.T) {
	tests := []struct {
		name   string
		paidAt time.Time
		want   time.Time
	}{
		{name: "same month and day next year", paidAt: date(2024, time.March, 10, 14), want: date(2025, time.March, 10, 14)},
		{name: "leap day clamps to Feb 28", paidAt: date(2024, time.February, 29, 9), want: date(2025, time.February, 28, 9)},
		{name: "Feb 28 before a leap year stays Feb 28", paidAt: date(2023, time.February, 28, 9), want: date(2024, time.February, 28, 9)},
		{name: "year end", paidAt: date(2024, time.December, 31, 23), want: date(2025, time.December, 31, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContractExpiry(tt.paidAt))
		})
	}
}

func TestContractExpiry_IsNotAFixedDayCount(t *testing.T) {
	// The year after 2024-01-15 contains Feb 29, so 365 days falls one day short.
	paid := date(2024, time.January, 15, 0)

	assert.Equal(t, date(2025, time.January, 14, 0), paid.Add(365*24*time.Hour))
	assert.Equal(t, date(2025, time.January, 15, 0), ContractExpiry(paid))
}

func TestRentMonthAndDueDate(t *testing.T) {
	month := RentMonth(time.Date(2025, time.July, 19, 17, 45, 3, 0, time.UTC))

	assert.Equal(t, date(2025, time.July, 1, 0), month)
	assert.Equal(t, date(2025, time.July, 5, 0), DueDate(month, DefaultDueDay))
	assert.Equal(t, date(2025, time.July, 5, 0), DueDate(month, 0))
	assert.Equal(t, date(2026, time.January, 1, 0), AddMonths(date(2025, time.November, 1, 0), 2))
}

func TestDayCounts(t *testing.T) {
	due := date(2025, time.January, 5, 0)

	assert.Equal(t, 3, DaysUntil(date(2025, time.January, 2, 10), due))
	assert.Equal(t, 1, DaysUntil(date(2025, time.January, 4, 10), due))
	assert.Equal(t, 0, DaysOverdue(date(2025, time.January, 5, 10), due))
	assert.Equal(t, 1, DaysOverdue(date(2025, time.January, 6, 10), due))
	assert.Equal(t, 14, DaysOverdue(date(2025, time.January, 19, 10), due))
}
