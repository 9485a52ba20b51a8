package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// DefaultGridSize is the number of points used to approximate the maximum of
// the integrand.
const DefaultGridSize = 1000

// Func is a real function of one variable.
type Func func(float64) float64

// Estimator draws hit-or-miss samples from a single pseudo-random stream.
// It is not safe for concurrent use.
type Estimator struct {
	rng      *rand.Rand
	gridSize int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithGridSize sets how many points are used to bound the integrand.
// Values below 2 are ignored.
func WithGridSize(n int) Option {
	return func(e *Estimator) {
		if n >= 2 {
			e.gridSize = n
		}
	}
}

// NewEstimator returns an Estimator drawing from src.
func NewEstimator(src rand.Source, opts ...Option) *Estimator {
	e := &Estimator{rng: rand.New(src), gridSize: DefaultGridSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate approximates the integral of f over [a, b] from n samples.
func (e *Estimator) Estimate(f Func, a, b float64, n int) (float64, error) {
	if err := validateRun(f, a, b, n); err != nil {
		return 0, err
	}
	maxY, err := e.bound(f, a, b)
	if err != nil {
		return 0, err
	}
	width := b - a
	if width == 0 || !(maxY > 0) {
		return 0, nil
	}

	hits := 0
	for range n {
		x := a + width*e.rng.Float64()
		y := maxY * e.rng.Float64()
		if y <= f(x) {
			hits++
		}
	}
	return float64(hits) / float64(n) * width * maxY, nil
}

// Repeat runs Estimate trials times and returns every result.
func (e *Estimator) Repeat(f Func, a, b float64, n, trials int) (Batch, error) {
	if trials <= 0 {
		return Batch{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	estimates := make([]float64, 0, trials)
	for range trials {
		v, err := e.Estimate(f, a, b, n)
		if err != nil {
			return Batch{}, err
		}
		estimates = append(estimates, v)
	}
	return NewBatch(estimates), nil
}

// bound returns the largest value of f on an evenly spaced grid over [a, b].
func (e *Estimator) bound(f Func, a, b float64) (float64, error) {
	xs := floats.Span(make([]float64, e.gridSize), a, b)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	maxY := floats.Max(ys)
	if math.IsInf(maxY, 1) {
		return 0, ErrUnboundedIntegrand
	}
	return maxY, nil
}
