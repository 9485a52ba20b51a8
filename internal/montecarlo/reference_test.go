package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numlab/internal/domain"
	"numlab/internal/montecarlo"
)

func TestAnalytical(t *testing.T) {
	assert.InDelta(t, 8.0/3.0, montecarlo.Analytical(0, 2), 1e-12)
	assert.InDelta(t, 2.0/3.0, montecarlo.Analytical(-1, 1), 1e-12)
	assert.Zero(t, montecarlo.Analytical(3, 3))
}

func TestQuadrature_MatchesClosedForms(t *testing.T) {
	got, abserr, err := montecarlo.Quadrature(square, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, got, 1e-10)
	assert.Less(t, abserr, 1e-8)

	got, _, err = montecarlo.Quadrature(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-10)

	got, _, err = montecarlo.Quadrature(square, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, _, err = montecarlo.Quadrature(square, 1, 0)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidBounds)
}

func TestSimpson(t *testing.T) {
	got, err := montecarlo.Simpson(square, 0, 2, montecarlo.SimpsonPoints)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, got, 1e-6)

	_, err = montecarlo.Simpson(square, 0, 2, 2)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidSamples)
}

func TestLookup(t *testing.T) {
	in, err := montecarlo.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "square", in.Name)
	require.NotNil(t, in.Exact)
	assert.InDelta(t, 8.0/3.0, in.Exact(0, 2), 1e-12)

	in, err = montecarlo.Lookup("sin")
	require.NoError(t, err)
	assert.Nil(t, in.Exact)

	_, err = montecarlo.Lookup("tan")
	assert.ErrorIs(t, err, montecarlo.ErrUnknownFunction)

	assert.Equal(t, []string{"cube", "exp", "sin", "sqrt", "square"}, montecarlo.Functions())
}

func TestNewSource(t *testing.T) {
	src1, label := montecarlo.NewSource("fixed")
	src2, _ := montecarlo.NewSource("fixed")
	assert.Equal(t, domain.SeedLabel("fixed"), label)
	assert.Equal(t, src1.Uint64(), src2.Uint64())

	_, generated := montecarlo.NewSource("")
	assert.NotEmpty(t, generated)
}

func TestSweeps(t *testing.T) {
	e := newEstimator(9)
	truth := montecarlo.Analytical(0, 2)

	bySamples, err := e.SampleSweep(square, 0, 2, []int{1_000, 10_000}, truth)
	require.NoError(t, err)
	require.Len(t, bySamples, 2)
	assert.Equal(t, 10_000, bySamples[1].Samples)
	assert.Equal(t, 1, bySamples[1].Trials)
	assert.InDelta(t, montecarlo.AbsError(bySamples[0].Value, truth), bySamples[0].AbsError, 1e-12)

	byTrials, err := e.TrialSweep(square, 0, 2, 1_000, []int{1, 10}, truth)
	require.NoError(t, err)
	require.Len(t, byTrials, 2)
	assert.Equal(t, 10, byTrials[1].Trials)

	_, err = e.SampleSweep(square, 0, 2, []int{0}, truth)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidSamples)
}

func TestRelError(t *testing.T) {
	assert.InDelta(t, 0.1, montecarlo.RelError(1.1, 1), 1e-12)
	assert.Zero(t, montecarlo.RelError(5, 0))
}
