package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Payment)
	assert.Equal(t, defaultPaymentBaseURL, cfg.Payment.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Payment.PollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Payment.PollTimeout)
	require.NotNil(t, cfg.Billing)
	assert.Equal(t, "50", cfg.Billing.ContractFee)
	assert.Equal(t, 5, cfg.Billing.RentDueDay)
	require.NotNil(t, cfg.Scheduler)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 9 * * *", cfg.Scheduler.ContractExpirySpec)
	assert.Equal(t, "0 10 * * *", cfg.Scheduler.RentReminderSpec)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, 5, cfg.Storage.MaxFiles)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxFileSize)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Payment:   &PaymentConfig{PollInterval: time.Second, BaseURL: "http://gateway.local"},
		Billing:   &BillingConfig{ContractFee: "75.50", RentDueDay: 10},
		Scheduler: &SchedulerConfig{Enabled: false, RentReminderSpec: "0 8 * * *"},
		Metrics:   &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Second, cfg.Payment.PollInterval)
	assert.Equal(t, "http://gateway.local", cfg.Payment.BaseURL)
	assert.Equal(t, "75.50", cfg.Billing.ContractFee)
	assert.Equal(t, 10, cfg.Billing.RentDueDay)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 8 * * *", cfg.Scheduler.RentReminderSpec)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_RejectsDueDayOutsideEveryMonth(t *testing.T) {
	cfg := &Config{Billing: &BillingConfig{RentDueDay: 31}}

	applyDefaults(cfg)

	assert.Equal(t, defaultRentDueDay, cfg.Billing.RentDueDay)
}

func TestApplyDefaults_WriteTimeoutOutlastsPaymentPolling(t *testing.T) {
	tests := []struct {
		name  string
		write time.Duration
		want  time.Duration
	}{
		{name: "too short is raised", write: 30 * time.Second, want: 2*time.Minute + 30*time.Second + awaitResponseMargin},
		{name: "long enough is kept", write: 5 * time.Minute, want: 5 * time.Minute},
		{name: "no deadline is kept", write: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.HTTP.Timeouts.WriteTimeout = tt.write

			applyDefaults(cfg)

			assert.Equal(t, tt.want, cfg.HTTP.Timeouts.WriteTimeout)
			if tt.want > 0 {
				assert.Greater(t, cfg.HTTP.Timeouts.WriteTimeout, cfg.Payment.PollTimeout+cfg.Payment.Timeout)
			}
		})
	}
}
