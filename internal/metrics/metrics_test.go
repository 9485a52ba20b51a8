package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"numlab/internal/metrics"
)

func TestMetrics_CountersAdvance(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveChange("greedy")
	m.ObserveChange("greedy")
	m.IncrementGreedyIncomplete()
	m.ObserveIntegration("estimate", "square", 1000, 0.01)
	m.ObserveReportSaved("estimate")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChangeRequests.WithLabelValues("greedy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GreedyIncomplete))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.SamplesDrawn))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsSaved.WithLabelValues("estimate")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EstimateRelError))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
