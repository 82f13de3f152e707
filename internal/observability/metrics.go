// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Simulation metrics
	SimulationsRun     *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	SamplesDrawn       prometheus.Counter
	InvalidScrubbed    prometheus.Counter

	// Comparison metrics
	ComparisonsRun     prometheus.Counter
	ScenariosEvaluated prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "buildvsbuy"
	}

	return &Metrics{
		SimulationsRun: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total number of simulate calls by recommendation",
		}, []string{"recommendation"}),
		SimulationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "duration_seconds",
			Help:      "Wall time of one simulate call in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		SamplesDrawn: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "samples_drawn_total",
			Help:      "Total number of Monte Carlo samples drawn",
		}),
		InvalidScrubbed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "invalid_samples_scrubbed_total",
			Help:      "Total number of NaN/Inf samples replaced before summarizing",
		}),
		ComparisonsRun: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "runs_total",
			Help:      "Total number of scenario comparison runs",
		}),
		ScenariosEvaluated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comparison",
			Name:      "scenarios_evaluated_total",
			Help:      "Total number of scenarios simulated in comparison runs",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSimulation records one completed simulate call.
func RecordSimulation(recommendation string, durationSeconds float64, samples int) {
	DefaultMetrics.SimulationsRun.WithLabelValues(recommendation).Inc()
	DefaultMetrics.SimulationDuration.Observe(durationSeconds)
	DefaultMetrics.SamplesDrawn.Add(float64(samples))
}

// RecordScrubbed records NaN/Inf samples replaced during summarization.
func RecordScrubbed(count int) {
	if count > 0 {
		DefaultMetrics.InvalidScrubbed.Add(float64(count))
	}
}

// RecordComparison records one scenario comparison run.
func RecordComparison(scenarios int) {
	DefaultMetrics.ComparisonsRun.Inc()
	DefaultMetrics.ScenariosEvaluated.Add(float64(scenarios))
}
