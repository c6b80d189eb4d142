package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IndexerMetrics tracks ingestion batches and query traffic on a private
// registry, so the /metrics endpoint exposes only indexer series.
type IndexerMetrics struct {
	registry *prometheus.Registry

	filesIndexedTotal *prometheus.CounterVec
	batchDuration     prometheus.Histogram
	batchesInFlight   prometheus.Gauge
	searchTotal       prometheus.Counter
	duplicateTotal    prometheus.Counter
}

func NewIndexerMetrics() *IndexerMetrics {
	registry := prometheus.NewRegistry()

	filesIndexedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dscvr",
			Subsystem: "indexer",
			Name:      "files_indexed_total",
			Help:      "Total files that went through ingestion by status.",
		},
		[]string{"status"},
	)
	batchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dscvr",
			Subsystem: "indexer",
			Name:      "batch_duration_seconds",
			Help:      "Ingestion batch duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)
	batchesInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dscvr",
			Subsystem: "indexer",
			Name:      "batches_in_flight",
			Help:      "Number of ingestion batches currently being processed.",
		},
	)
	searchTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dscvr",
			Subsystem: "indexer",
			Name:      "search_requests_total",
			Help:      "Total content search requests.",
		},
	)
	duplicateTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dscvr",
			Subsystem: "indexer",
			Name:      "duplicate_requests_total",
			Help:      "Total duplicate lookup requests.",
		},
	)

	registry.MustRegister(filesIndexedTotal, batchDuration, batchesInFlight, searchTotal, duplicateTotal)

	return &IndexerMetrics{
		registry:          registry,
		filesIndexedTotal: filesIndexedTotal,
		batchDuration:     batchDuration,
		batchesInFlight:   batchesInFlight,
		searchTotal:       searchTotal,
		duplicateTotal:    duplicateTotal,
	}
}

func (m *IndexerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *IndexerMetrics) StartBatch() {
	m.batchesInFlight.Inc()
}

func (m *IndexerMetrics) FinishBatch(duration time.Duration, indexed, failed int) {
	m.batchesInFlight.Dec()
	m.batchDuration.Observe(duration.Seconds())
	m.filesIndexedTotal.WithLabelValues("success").Add(float64(indexed))
	m.filesIndexedTotal.WithLabelValues("error").Add(float64(failed))
}

func (m *IndexerMetrics) ObserveSearch() {
	m.searchTotal.Inc()
}

func (m *IndexerMetrics) ObserveDuplicateLookup() {
	m.duplicateTotal.Inc()
}
