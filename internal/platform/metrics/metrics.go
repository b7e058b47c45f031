package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeSkipped    = "skipped"
	OutcomeDryRun     = "dry_run"
	OutcomeDisabled   = "disabled"
	OutcomeNoDemoUser = "demo_user_not_found"
	OutcomeInProgress = "in_progress"
)

// Metrics holds the Prometheus collectors of the reset subsystem.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Procedure side
	ResetExecutions *prometheus.CounterVec
	ResetDuration   prometheus.Histogram
	ResetRows       *prometheus.CounterVec

	// Orchestrator side
	TriggerRequests *prometheus.CounterVec
	TriggerLatency  *prometheus.HistogramVec
	LastResetUnix   prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer exposes them
// on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		ResetExecutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freelanceos_reset_executions_total",
			Help: "Reset procedure executions by actor and outcome",
		}, []string{"triggered_by", "outcome"}),

		ResetDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "freelanceos_reset_duration_seconds",
			Help:    "Duration of the sweep and reseed transaction",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),

		ResetRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freelanceos_reset_rows_total",
			Help: "Rows touched by resets, by entity and operation",
		}, []string{"entity", "operation"}), // operation: "deleted" or "inserted"

		TriggerRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freelanceos_reset_triggers_total",
			Help: "Reset trigger requests handled by the orchestrator",
		}, []string{"triggered_by", "outcome"}),

		TriggerLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freelanceos_reset_trigger_duration_seconds",
			Help:    "Time from trigger entry to response",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"triggered_by"}),

		LastResetUnix: factory.NewGauge(prometheus.GaugeOpts{
			Name: "freelanceos_reset_last_success_timestamp_seconds",
			Help: "Unix time of the last successful reset",
		}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// ObserveExecution records one run of the reset procedure.
func (m *Metrics) ObserveExecution(actor, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ResetExecutions.WithLabelValues(actor, outcome).Inc()
	if outcome == OutcomeSuccess || outcome == OutcomeFailure {
		m.ResetDuration.Observe(d.Seconds())
	}
	if outcome == OutcomeSuccess {
		m.LastResetUnix.SetToCurrentTime()
	}
}

// AddRows records rows deleted or inserted for one entity.
func (m *Metrics) AddRows(entity, operation string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ResetRows.WithLabelValues(entity, operation).Add(float64(n))
}

// ObserveTrigger records one orchestrator decision.
func (m *Metrics) ObserveTrigger(actor, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.TriggerRequests.WithLabelValues(actor, outcome).Inc()
	m.TriggerLatency.WithLabelValues(actor).Observe(d.Seconds())
}

// Handler serves the exposition format for the registry the metrics were created with.
func (m *Metrics) Handler() gin.HandlerFunc {
	if m == nil || m.gatherer == nil {
		return gin.WrapH(promhttp.Handler())
	}
	return gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
