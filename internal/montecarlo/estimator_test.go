package montecarlo_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numlab/internal/montecarlo"
)

func square(x float64) float64 { return x * x }

func newEstimator(seed uint64) *montecarlo.Estimator {
	return montecarlo.NewEstimator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestEstimate_SquareOnZeroTwo(t *testing.T) {
	got, err := newEstimator(1).Estimate(square, 0, 2, 500_000)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, got, 8.0/3.0*0.01)
}

func TestEstimate_KnownIntervals(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{0, 1, 1.0 / 3.0},
		{0, 2, 8.0 / 3.0},
		{-1, 1, 2.0 / 3.0},
	}
	e := newEstimator(7)
	for _, tt := range tests {
		got, err := e.Estimate(square, tt.a, tt.b, 200_000)
		require.NoError(t, err)
		assert.InDeltaf(t, tt.want, got, tt.want*0.05, "[%g, %g]", tt.a, tt.b)
	}
}

func TestEstimate_Reproducible(t *testing.T) {
	a, err := newEstimator(42).Estimate(square, 0, 2, 10_000)
	require.NoError(t, err)
	b, err := newEstimator(42).Estimate(square, 0, 2, 10_000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEstimate_ErrorShrinksWithSamples(t *testing.T) {
	const runs = 10
	want := montecarlo.Analytical(0, 2)
	e := newEstimator(3)

	meanErr := func(n int) float64 {
		total := 0.0
		for range runs {
			v, err := e.Estimate(square, 0, 2, n)
			require.NoError(t, err)
			total += math.Abs(v - want)
		}
		return total / runs
	}

	small := meanErr(1_000)
	large := meanErr(500_000)
	assert.Less(t, large, small)
	assert.Less(t, large/want, 0.01)
}

func TestEstimate_DegenerateInputs(t *testing.T) {
	e := newEstimator(1)

	got, err := e.Estimate(square, 1.5, 1.5, 100)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = e.Estimate(func(float64) float64 { return 0 }, 0, 1, 100)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestEstimate_Validation(t *testing.T) {
	e := newEstimator(1)

	_, err := e.Estimate(nil, 0, 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrNilFunc)

	_, err = e.Estimate(square, 2, 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidBounds)

	_, err = e.Estimate(square, math.NaN(), 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidBounds)

	_, err = e.Estimate(square, 0, math.Inf(1), 10)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidBounds)

	_, err = e.Estimate(square, 0, 1, 0)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidSamples)

	_, err = e.Repeat(square, 0, 1, 10, 0)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidTrials)

	_, err = e.Estimate(func(x float64) float64 { return 1 / x }, 0, 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrUnboundedIntegrand)
}

func TestEstimate_CoarseGridBiasesPeaksLow(t *testing.T) {
	// A spike between the two grid points {0, 1} is invisible to the bound.
	spike := func(x float64) float64 { return math.Exp(-1000 * (x - 0.5) * (x - 0.5)) }

	coarse := montecarlo.NewEstimator(rand.NewPCG(1, 2), montecarlo.WithGridSize(2))
	got, err := coarse.Estimate(spike, 0, 1, 10_000)
	require.NoError(t, err)

	want, _, err := montecarlo.Quadrature(spike, 0, 1)
	require.NoError(t, err)
	assert.Less(t, got, want/10)
}

func TestRepeat_MeanAndSpread(t *testing.T) {
	batch, err := newEstimator(11).Repeat(square, 0, 2, 10_000, 50)
	require.NoError(t, err)

	require.Len(t, batch.Estimates, 50)
	sum := 0.0
	for _, v := range batch.Estimates {
		sum += v
	}
	assert.InDelta(t, sum/50, batch.Mean, 1e-12)
	assert.InDelta(t, 8.0/3.0, batch.Mean, 0.05)
	assert.Greater(t, batch.StdDev(), 0.0)
	assert.Less(t, batch.StdErr(), batch.StdDev())
}

func TestRepeat_SpreadOfMeanShrinksWithTrials(t *testing.T) {
	const batches = 30
	e := newEstimator(5)

	spread := func(trials int) float64 {
		means := make([]float64, 0, batches)
		for range batches {
			b, err := e.Repeat(square, 0, 2, 1_000, trials)
			require.NoError(t, err)
			means = append(means, b.Mean)
		}
		return montecarlo.NewBatch(means).StdDev()
	}

	assert.Less(t, spread(25), spread(1))
}

func TestBatch_SingleEstimate(t *testing.T) {
	b := montecarlo.NewBatch([]float64{2.5})
	assert.Equal(t, 2.5, b.Mean)
	assert.Zero(t, b.StdDev())
	assert.Zero(t, b.StdErr())
}

func TestBatch_PopulationStdDev(t *testing.T) {
	b := montecarlo.NewBatch([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, b.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), b.StdDev(), 1e-12)
	assert.InDelta(t, math.Sqrt(1.25)/2, b.StdErr(), 1e-12)
}
