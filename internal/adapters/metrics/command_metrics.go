package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector handles all command/query execution metrics
type CommandMetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Solver builds dominate the upper buckets
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Command and query execution duration distribution",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.25, 1.0, 5.0, 15.0, 60.0},
			},
			[]string{"request", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of commands and queries executed by type and status",
			},
			[]string{"request", "status"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	return register(c.requestDuration, c.requestsTotal)
}

// RecordCommandExecution records one command or query execution
func (c *CommandMetricsCollector) RecordCommandExecution(
	requestName string,
	duration float64,
	success bool,
) {
	status := "success"
	if !success {
		status = "error"
	}

	c.requestDuration.WithLabelValues(requestName, status).Observe(duration)
	c.requestsTotal.WithLabelValues(requestName, status).Inc()
}
