package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// refresh pipeline.
type Metrics struct {
	RefreshesTotal  *prometheus.CounterVec // labels: outcome={success,failure}
	RefreshDuration prometheus.Histogram

	// Per-feed fetch metrics.
	FeedFetches *prometheus.CounterVec // labels: feed={forecast,observation,alert_index,alert_detail}, outcome={success,error}

	// Alert state from the most recent successful refresh.
	ActiveAlerts        prometheus.Gauge
	HighestSeverityRank prometheus.Gauge // 3=red 2=orange 1=yellow 0=unknown -1=none

	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RefreshesTotal,
		m.RefreshDuration,
		m.FeedFetches,
		m.ActiveAlerts,
		m.HighestSeverityRank,
		m.LastSuccessTimestamp,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RefreshesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vedurvakt",
			Name:      "refreshes_total",
			Help:      "Refresh cycles by outcome.",
		}, []string{"outcome"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vedurvakt",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of a complete refresh cycle.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vedurvakt",
			Name:      "feed_fetches_total",
			Help:      "Upstream feed fetches by feed and outcome.",
		}, []string{"feed", "outcome"}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vedurvakt",
			Name:      "active_alerts",
			Help:      "Number of alerts in the latest snapshot.",
		}),
		HighestSeverityRank: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vedurvakt",
			Name:      "highest_alert_severity_rank",
			Help:      "Highest alert severity in the latest snapshot (3=red, 2=orange, 1=yellow, 0=unknown, -1=none).",
		}),
		LastSuccessTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vedurvakt",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
	}
}
