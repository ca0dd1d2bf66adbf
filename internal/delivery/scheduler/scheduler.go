// Package scheduler runs the reminder sweeps on cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"licensing/config"
	"licensing/internal/delivery"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/lifecycle"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// sweepTimeout bounds one sweep run.
const sweepTimeout = 10 * time.Minute

type sweepFunc func(ctx context.Context, now time.Time) (*usecase.SweepReport, error)

type scheduler struct {
	enabled bool
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time

	// base is cancelled on stop so running sweeps abort.
	base   context.Context
	cancel context.CancelFunc
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewScheduler registers the contract expiry and rent reminder sweeps.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s, err := newScheduler(params.Cfg.Scheduler, params.Logger, params.ReminderUC)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(cfg *config.SchedulerConfig, logger *slog.Logger, reminderUC usecase.ReminderUsecase) (*scheduler, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return nil, errors.Wrapf(err, "load scheduler timezone %q", cfg.Timezone)
		}
	}

	cronLogger := &slogCronLogger{logger: logger}
	base, cancel := context.WithCancel(context.Background())
	s := &scheduler{
		enabled: cfg.Enabled,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		now:    time.Now,
		base:   base,
		cancel: cancel,
	}

	if _, err := s.cron.AddFunc(cfg.ContractExpirySpec, s.job("contract-expiry", reminderUC.SweepContractExpiry)); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid contract expiry spec %q", cfg.ContractExpirySpec)
	}
	if _, err := s.cron.AddFunc(cfg.RentReminderSpec, s.job("rent-reminder", reminderUC.SweepRent)); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid rent reminder spec %q", cfg.RentReminderSpec)
	}

	return s, nil
}

// Serve starts the cron loop in the background and returns.
func (s *scheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Scheduler disabled")

		return nil
	}

	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	done := s.cron.Stop()
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "sweeps still running at shutdown")
	}
}

func (s *scheduler) job(name string, sweep sweepFunc) func() {
	return func() {
		runID := uuid.New().String()
		logger := s.logger.With(slog.String("sweep", name), slog.String("request_id", runID))

		ctx, cancel := context.WithTimeout(s.base, sweepTimeout)
		defer cancel()
		ctx = deliverycontext.WithRequestID(ctx, runID)
		ctx = deliverycontext.WithLogger(ctx, logger)

		started := s.now()
		report, err := sweep(ctx, started)
		if err != nil {
			logger.Error("Sweep failed", slog.Any("error", err))

			return
		}

		logger.Info("Sweep finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
			slog.Duration("took", time.Since(started)))
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
