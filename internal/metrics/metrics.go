package metrics

import (
	"time"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wallet_import"

type Metrics struct {
	SessionsCreated prometheus.Counter
	SessionsExpired prometheus.Counter
	ActiveSessions  prometheus.Gauge
	RowsProcessed   *prometheus.CounterVec
	RunsTotal       *prometheus.CounterVec
	RunDuration     prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Import sessions opened from an uploaded file.",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Import sessions discarded after being idle.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Import sessions currently held in memory.",
		}),
		RowsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Rows by final outcome.",
		}, []string{"status"}),
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Import runs by final status.",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of an import run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
}

// The helpers below accept a nil receiver so callers can run without metrics.

func (m *Metrics) ObserveRow(status domain.RowStatus) {
	if m == nil {
		return
	}
	m.RowsProcessed.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) ObserveRun(status domain.RunStatus, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(string(status)).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed(expired bool) {
	if m == nil {
		return
	}
	if expired {
		m.SessionsExpired.Inc()
	}
	m.ActiveSessions.Dec()
}
