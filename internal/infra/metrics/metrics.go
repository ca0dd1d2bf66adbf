// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "licensing"

// Metrics groups every collector so tests can register them on a private registry.
type Metrics struct {
	GatewayRequests *prometheus.CounterVec
	GatewayLatency  *prometheus.HistogramVec
	PaymentsSettled *prometheus.CounterVec
	SweepNotices    *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// NewRegistry returns a registry preloaded with process and runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_gateway_requests_total",
				Help:      "Payment provider calls by operation and normalized outcome",
			},
			[]string{"operation", "outcome"},
		),
		GatewayLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payment_gateway_request_duration_seconds",
				Help:      "Latency of payment provider calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		PaymentsSettled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_settled_total",
				Help:      "Contracts and rents marked paid",
			},
			[]string{"kind"},
		),
		SweepNotices: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_notices_total",
				Help:      "Reminder notices emitted by the scheduled sweeps",
			},
			[]string{"sweep", "result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ObserveGateway records one provider call.
func (m *Metrics) ObserveGateway(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(operation, outcome).Inc()
	m.GatewayLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// PaymentSettled counts a contract or rent flipping to paid.
func (m *Metrics) PaymentSettled(kind string) {
	if m == nil {
		return
	}
	m.PaymentsSettled.WithLabelValues(kind).Inc()
}

// SweepNotice counts a reminder attempt.
func (m *Metrics) SweepNotice(sweep, result string) {
	if m == nil {
		return
	}
	m.SweepNotices.WithLabelValues(sweep, result).Inc()
}
