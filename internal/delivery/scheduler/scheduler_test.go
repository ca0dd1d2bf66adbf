package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Enabled:            true,
		Timezone:           "Africa/Blantyre",
		ContractExpirySpec: "0 8 * * *",
		RentReminderSpec:   "0 9 * * *",
	}
}

func TestNewScheduler_RegistersBothSweeps(t *testing.T) {
	s, err := newScheduler(testConfig(), slog.New(slog.DiscardHandler), mockUsecase.NewMockReminderUsecase(t))
	require.NoError(t, err)

	entries := s.cron.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Africa/Blantyre", s.cron.Location().String())
}

func TestNewScheduler_InvalidConfig(t *testing.T) {
	t.Run("bad spec", func(t *testing.T) {
		cfg := testConfig()
		cfg.RentReminderSpec = "every day"

		_, err := newScheduler(cfg, slog.New(slog.DiscardHandler), mockUsecase.NewMockReminderUsecase(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rent reminder")
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := testConfig()
		cfg.Timezone = "Mars/Olympus"

		_, err := newScheduler(cfg, slog.New(slog.DiscardHandler), mockUsecase.NewMockReminderUsecase(t))
		require.Error(t, err)
	})
}

func TestScheduler_JobPassesClockAndScopedContext(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	s, err := newScheduler(testConfig(), slog.New(slog.DiscardHandler), reminderUC)
	require.NoError(t, err)

	fixed := time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	reminderUC.EXPECT().
		SweepRent(mock.Anything, fixed).
		RunAndReturn(func(ctx context.Context, _ time.Time) (*usecase.SweepReport, error) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return &usecase.SweepReport{Scanned: 3, Sent: 3}, nil
		})

	s.job("rent-reminder", reminderUC.SweepRent)()
}

func TestScheduler_JobSwallowsErrors(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	s, err := newScheduler(testConfig(), slog.New(slog.DiscardHandler), reminderUC)
	require.NoError(t, err)

	reminderUC.EXPECT().SweepContractExpiry(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.NotPanics(t, s.job("contract-expiry", reminderUC.SweepContractExpiry))
}

func TestScheduler_ServeAndStop(t *testing.T) {
	s, err := newScheduler(testConfig(), slog.New(slog.DiscardHandler), mockUsecase.NewMockReminderUsecase(t))
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.stop(context.Background()))
	assert.Error(t, s.base.Err())
}
