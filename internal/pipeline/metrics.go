package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	// importsTotal counts validation runs by outcome: accepted, rejected, failed
	importsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_imports_total",
		Help: "Total number of schedule validation runs by outcome",
	}, []string{"outcome"})

	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_findings_total",
		Help: "Total number of validation findings by severity and kind",
	}, []string{"severity", "kind"})

	ratesParsed = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_rates_parsed",
		Help:    "Number of rate rows per parsed schedule",
		Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
	})

	validationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_validation_duration_seconds",
		Help:    "Time from upload to validation report",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_exports_total",
		Help: "Total number of rendered workbooks by kind",
	}, []string{"kind"}) // kind: export, template
)

// MetricsRecorder records pipeline metrics
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordValidation records one finished validation run
func (m *MetricsRecorder) RecordValidation(result *types.ValidationResult, totalRates int, elapsed time.Duration) {
	outcome := outcomeRejected
	if result.Valid {
		outcome = outcomeAccepted
	}
	importsTotal.WithLabelValues(outcome).Inc()
	for _, f := range result.Errors {
		findingsTotal.WithLabelValues(string(types.SeverityError), string(f.Kind)).Inc()
	}
	for _, f := range result.Warnings {
		findingsTotal.WithLabelValues(string(types.SeverityWarning), string(f.Kind)).Inc()
	}
	ratesParsed.Observe(float64(totalRates))
	validationDuration.Observe(elapsed.Seconds())
}

// RecordFailure records a run that could not produce a report
func (m *MetricsRecorder) RecordFailure() {
	importsTotal.WithLabelValues(outcomeFailed).Inc()
}

// RecordRender records a rendered workbook
func (m *MetricsRecorder) RecordRender(kind string) {
	exportsTotal.WithLabelValues(kind).Inc()
}
