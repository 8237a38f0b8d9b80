package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "stowagemaster"
	subsystem = "solver"
)

// Registry is the global Prometheus registry for solver metrics. Nil until
// InitRegistry is called, matching the daemon's opt-in metrics behavior.
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry. Should be called once at
// daemon startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, or nil if metrics are
// not initialized.
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}

// SolverMetricsCollector records outcomes of Optimize/OptimizeWithRetries
// calls: which algorithm ran, how long it took, the resulting plan score,
// and how many of the requested cargoes went unfulfilled.
type SolverMetricsCollector struct {
	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	planScore      *prometheus.HistogramVec
	retriesPerRun  prometheus.Histogram
	shortfallTotal *prometheus.CounterVec
}

// NewSolverMetricsCollector creates a new solver metrics collector.
func NewSolverMetricsCollector() *SolverMetricsCollector {
	return &SolverMetricsCollector{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of Optimize calls by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of a solver run",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"algorithm"},
		),
		planScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plan_score",
				Help:      "Composite score (0-100) of the produced plan",
				Buckets:   []float64{10, 25, 40, 55, 65, 75, 85, 90, 95, 100},
			},
			[]string{"algorithm"},
		),
		retriesPerRun: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "retries_per_run",
				Help:      "Number of retries requested for OptimizeWithRetries calls",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		shortfallTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unfulfilled_cargoes_total",
				Help:      "Count of cargo orders left with remaining unfulfilled volume after a run",
			},
			[]string{"algorithm"},
		),
	}
}

// Register registers all solver metrics with the Prometheus registry.
func (c *SolverMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}

	collectors := []prometheus.Collector{
		c.runsTotal,
		c.runDuration,
		c.planScore,
		c.retriesPerRun,
		c.shortfallTotal,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordRun records the outcome of a single Optimize call.
func (c *SolverMetricsCollector) RecordRun(algorithm string, outcome string, durationSeconds, score float64) {
	c.runsTotal.WithLabelValues(algorithm, outcome).Inc()
	c.runDuration.WithLabelValues(algorithm).Observe(durationSeconds)
	if outcome == "ok" {
		c.planScore.WithLabelValues(algorithm).Observe(score)
	}
}

// RecordRetries records how many retries an OptimizeWithRetries call asked for.
func (c *SolverMetricsCollector) RecordRetries(numRetries int) {
	c.retriesPerRun.Observe(float64(numRetries))
}

// RecordShortfall records how many cargo orders were left unfulfilled.
func (c *SolverMetricsCollector) RecordShortfall(algorithm string, count int) {
	if count <= 0 {
		return
	}
	c.shortfallTotal.WithLabelValues(algorithm).Add(float64(count))
}

var globalCollector *SolverMetricsCollector

// SetGlobalCollector sets the process-wide solver metrics collector, mirroring
// the package-level singleton pattern used for the daemon's other metrics.
func SetGlobalCollector(collector *SolverMetricsCollector) {
	globalCollector = collector
}

// GlobalCollector returns the process-wide solver metrics collector, or nil
// if metrics are disabled.
func GlobalCollector() *SolverMetricsCollector {
	return globalCollector
}
