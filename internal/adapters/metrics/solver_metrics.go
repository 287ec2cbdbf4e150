package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/domain/solver"
)

var _ solving.MetricsRecorder = (*SolverMetricsCollector)(nil)

// SolverMetricsCollector records solver cache activity
type SolverMetricsCollector struct {
	buildDuration prometheus.Histogram
	buildsTotal   *prometheus.CounterVec
	tableCells    *prometheus.GaugeVec
	readDuration  prometheus.Histogram
	readsTotal    *prometheus.CounterVec
	cacheEntries  prometheus.Gauge
}

// NewSolverMetricsCollector creates a new solver metrics collector
func NewSolverMetricsCollector() *SolverMetricsCollector {
	return &SolverMetricsCollector{
		buildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "build_duration_seconds",
				Help:      "Time spent tabulating a Driver and Solver pair",
				Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),

		buildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "builds_total",
				Help:      "Solver build requests by outcome",
			},
			[]string{"outcome"},
		),

		tableCells: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "last_build_cells",
				Help:      "Cell count of the most recently built tables",
			},
			[]string{"table"},
		),

		readDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "read_duration_seconds",
				Help:      "Time spent reading a rotation out of a built solver",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),

		readsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "reads_total",
				Help:      "Solver reads by whether a solver existed for the key",
			},
			[]string{"found"},
		),

		cacheEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "cache_entries",
				Help:      "Number of solvers held by the cache",
			},
		),
	}
}

// Register registers all solver metrics with the Prometheus registry
func (c *SolverMetricsCollector) Register() error {
	return register(
		c.buildDuration,
		c.buildsTotal,
		c.tableCells,
		c.readDuration,
		c.readsTotal,
		c.cacheEntries,
	)
}

// RecordBuild records a completed table build
func (c *SolverMetricsCollector) RecordBuild(duration time.Duration, stats solver.Stats) {
	c.buildDuration.Observe(duration.Seconds())
	c.buildsTotal.WithLabelValues("built").Inc()
	c.tableCells.WithLabelValues("driver").Set(float64(stats.DriverCells))
	c.tableCells.WithLabelValues("solver").Set(float64(stats.SolverCells))
}

// RecordBuildRejected records a create for a key that was already built
func (c *SolverMetricsCollector) RecordBuildRejected() {
	c.buildsTotal.WithLabelValues("already_exists").Inc()
}

// RecordRead records a read attempt
func (c *SolverMetricsCollector) RecordRead(found bool, duration time.Duration) {
	label := "false"
	if found {
		label = "true"
		c.readDuration.Observe(duration.Seconds())
	}
	c.readsTotal.WithLabelValues(label).Inc()
}

// RecordCacheSize records the current number of cached solvers
func (c *SolverMetricsCollector) RecordCacheSize(size int) {
	c.cacheEntries.Set(float64(size))
}
