package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ChangeRequests     *prometheus.CounterVec
	GreedyIncomplete   prometheus.Counter
	GreedySuboptimal   prometheus.Counter
	UnreachableAmounts prometheus.Counter
	IntegrationRuns    *prometheus.CounterVec
	SamplesDrawn       prometheus.Counter
	EstimateRelError   prometheus.Histogram
	ReportsSaved       *prometheus.CounterVec
	ReportSaveFailures prometheus.Counter
}

// New registers numlab collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChangeRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "numlab_change_requests_total",
			Help: "Total number of coin change decompositions by strategy",
		}, []string{"strategy"}),
		GreedyIncomplete: f.NewCounter(prometheus.CounterOpts{
			Name: "numlab_change_greedy_incomplete_total",
			Help: "Greedy passes that stopped with a nonzero remainder",
		}),
		GreedySuboptimal: f.NewCounter(prometheus.CounterOpts{
			Name: "numlab_change_greedy_suboptimal_total",
			Help: "Comparisons where greedy used more coins than the optimum",
		}),
		UnreachableAmounts: f.NewCounter(prometheus.CounterOpts{
			Name: "numlab_change_unreachable_total",
			Help: "Minimum-count decompositions that found no solution",
		}),
		IntegrationRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "numlab_integration_runs_total",
			Help: "Monte Carlo runs by kind and integrand",
		}, []string{"kind", "function"}),
		SamplesDrawn: f.NewCounter(prometheus.CounterOpts{
			Name: "numlab_integration_samples_total",
			Help: "Random points drawn by the hit-or-miss estimator",
		}),
		EstimateRelError: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "numlab_integration_relative_error",
			Help:    "Relative error of estimates against the best known reference",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		ReportsSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "numlab_reports_saved_total",
			Help: "Reports written to the store by kind",
		}, []string{"kind"}),
		ReportSaveFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "numlab_report_save_failures_total",
			Help: "Reports that could not be written",
		}),
	}
}

func (m *Metrics) ObserveChange(strategy string) {
	m.ChangeRequests.WithLabelValues(strategy).Inc()
}

func (m *Metrics) IncrementGreedyIncomplete() {
	m.GreedyIncomplete.Inc()
}

func (m *Metrics) IncrementGreedySuboptimal() {
	m.GreedySuboptimal.Inc()
}

func (m *Metrics) IncrementUnreachable() {
	m.UnreachableAmounts.Inc()
}

func (m *Metrics) ObserveIntegration(kind, function string, samples int, relErr float64) {
	m.IntegrationRuns.WithLabelValues(kind, function).Inc()
	m.SamplesDrawn.Add(float64(samples))
	m.EstimateRelError.Observe(relErr)
}

func (m *Metrics) ObserveReportSaved(kind string) {
	m.ReportsSaved.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementReportSaveFailures() {
	m.ReportSaveFailures.Inc()
}
