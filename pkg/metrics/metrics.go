// Package metrics provides Prometheus instrumentation for dashlib.
//
// Metrics are registered once at package load through promauto and are
// safe for concurrent use. Components record into the shared collectors:
//
//	metrics.RowsLoaded.WithLabelValues("csv").Add(float64(rows))
//	metrics.ColumnsDowncast.WithLabelValues("int8").Inc()
//
//	timer := metrics.NewTimer(metrics.ShrinkDuration)
//	reducer.Shrink(f)
//	timer.ObserveDuration()
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsLoaded counts rows ingested into frames, labeled by source kind
	RowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashlib_rows_loaded_total",
			Help: "Total number of rows loaded into frames",
		},
		[]string{"source"},
	)

	// ColumnsDowncast counts columns narrowed by shrink passes, labeled by
	// the dtype they were narrowed to
	ColumnsDowncast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashlib_columns_downcast_total",
			Help: "Total number of columns downcast to a narrower dtype",
		},
		[]string{"dtype"},
	)

	// ShrinkBytesSaved accumulates memory reclaimed by shrink passes
	ShrinkBytesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashlib_shrink_bytes_saved_total",
			Help: "Total bytes of frame memory reclaimed by shrinking",
		},
	)

	// ShrinkDuration tracks how long shrink passes take
	ShrinkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashlib_shrink_duration_seconds",
			Help:    "Duration of frame shrink passes",
			Buckets: prometheus.DefBuckets,
		},
	)

	// PatternSearches counts pattern lookups, labeled by outcome
	PatternSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashlib_pattern_searches_total",
			Help: "Total number of pattern searches",
		},
		[]string{"outcome"},
	)
)

// Timer measures a duration and records it into a histogram
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer starts a timer against the given observer
func NewTimer(observer prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: observer,
	}
}

// ObserveDuration records the elapsed time and returns it
func (t *Timer) ObserveDuration() time.Duration {
	elapsed := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(elapsed.Seconds())
	}
	return elapsed
}
