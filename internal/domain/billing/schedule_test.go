package billing

import (
	"slices"
	"testing"
	"time"

	"licensing/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_CrossesYearAndUsesStoredStatus(t *testing.T) {
	fee := decimal.NewFromInt(5000)
	rents := []*entity.Rent{
		{Month: date(2025, time.November, 1, 0), Status: entity.RentStatusPaid},
		{Month: date(2026, time.January, 1, 0), Status: entity.RentStatusOverdue},
		{Month: date(2025, time.October, 1, 0), Status: entity.RentStatusPaid},
	}

	entries := slices.Collect(Schedule(date(2025, time.November, 20, 10), fee, DefaultDueDay, rents))

	require.Len(t, entries, ScheduleLength)
	assert.Equal(t, date(2025, time.November, 1, 0), entries[0].Month)
	assert.Equal(t, entity.RentStatusPaid, entries[0].Status)
	assert.Equal(t, date(2025, time.December, 1, 0), entries[1].Month)
	assert.Equal(t, entity.RentStatusPending, entries[1].Status)
	assert.Equal(t, date(2026, time.January, 1, 0), entries[2].Month)
	assert.Equal(t, entity.RentStatusOverdue, entries[2].Status)
	assert.Equal(t, date(2026, time.January, 5, 0), entries[2].DueDate)
	for _, e := range entries {
		assert.True(t, fee.Equal(e.Amount))
	}
}

func TestSchedule_IsRestartableAndStopsEarly(t *testing.T) {
	seq := Schedule(date(2025, time.March, 1, 0), decimal.NewFromInt(10), DefaultDueDay, nil)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestScheduleWindow(t *testing.T) {
	from, to := ScheduleWindow(date(2025, time.December, 9, 0))

	assert.Equal(t, date(2025, time.December, 1, 0), from)
	assert.Equal(t, date(2026, time.March, 1, 0), to)
}
