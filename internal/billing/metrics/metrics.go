package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the billing module.
type Metrics struct {
	// Eligibility verdicts by result and qualifying basis
	EligibilityOutcome *prometheus.CounterVec

	// Operation latencies
	EvaluateLatency  prometheus.Histogram
	SummarizeLatency prometheus.Histogram
}

// New creates a new Metrics instance with all billing module metrics registered.
func New() *Metrics {
	return &Metrics{
		EligibilityOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_eligibility_outcomes_total",
			Help: "Total eligibility verdicts by result and qualifying basis",
		}, []string{"result", "basis"}), // basis: "full", "installment", "none", "no_invoices"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caseflow_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluations including ledger reads",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		SummarizeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caseflow_summarize_duration_seconds",
			Help:    "Duration of payment summary aggregation including the embedded evaluation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementOutcome records an eligibility verdict.
func (m *Metrics) IncrementOutcome(result, basis string) {
	if m != nil {
		m.EligibilityOutcome.WithLabelValues(result, basis).Inc()
	}
}

// ObserveEvaluate records the duration of an Evaluate call.
func (m *Metrics) ObserveEvaluate(start time.Time) {
	if m != nil {
		m.EvaluateLatency.Observe(time.Since(start).Seconds())
	}
}

// ObserveSummarize records the duration of a Summarize call.
func (m *Metrics) ObserveSummarize(start time.Time) {
	if m != nil {
		m.SummarizeLatency.Observe(time.Since(start).Seconds())
	}
}
