package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard service.
type Metrics struct {
	RecordsLoaded prometheus.Gauge

	// Recompute metrics.
	Recomputations    prometheus.Counter
	RecomputeDuration prometheus.Histogram
	SnapshotCache     *prometheus.CounterVec // labels: result={hit,miss}
	RankInsufficient  prometheus.Counter

	// Snapshot publishing metrics.
	SnapshotsPublished prometheus.Counter
	PublishErrors      prometheus.Counter
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.Recomputations,
		m.RecomputeDuration,
		m.SnapshotCache,
		m.RankInsufficient,
		m.SnapshotsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aq_dashboard",
			Name:      "records_loaded",
			Help:      "Observations held in the record store.",
		}),
		Recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "recomputations_total",
			Help:      "Full dashboard recomputations triggered by a selection.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aq_dashboard",
			Name:      "recompute_duration_seconds",
			Help:      "Duration of a full dashboard recomputation.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		SnapshotCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "snapshot_cache_total",
			Help:      "Snapshot cache lookups by result.",
		}, []string{"result"}),
		RankInsufficient: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "rank_insufficient_total",
			Help:      "Recomputations where station ranking had too few stations to score.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "snapshots_published_total",
			Help:      "Snapshots written to the snapshot topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "publish_errors_total",
			Help:      "Snapshot publish failures.",
		}),
	}
}
