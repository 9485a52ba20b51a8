package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// QuadraturePoints is the Gauss-Legendre order used by Quadrature.
	QuadraturePoints = 64
	// SimpsonPoints is the default grid size for Simpson.
	SimpsonPoints = 1001
)

// Analytical returns the exact integral of x² over [a, b].
func Analytical(a, b float64) float64 {
	return (b*b*b - a*a*a) / 3
}

// Quadrature integrates f over [a, b] with fixed-order Gauss-Legendre
// quadrature. The error estimate is the difference between orders n and 2n.
func Quadrature(f Func, a, b float64) (value, abserr float64, err error) {
	if f == nil {
		return 0, 0, ErrNilFunc
	}
	if err := validateBounds(a, b); err != nil {
		return 0, 0, err
	}
	if a == b {
		return 0, 0, nil
	}
	coarse := quad.Fixed(f, a, b, QuadraturePoints, quad.Legendre{}, 0)
	fine := quad.Fixed(f, a, b, 2*QuadraturePoints, quad.Legendre{}, 0)
	return fine, math.Abs(fine - coarse), nil
}

// Simpson integrates f over [a, b] with the composite Simpson rule on an
// evenly spaced grid of the given size (at least 3 points).
func Simpson(f Func, a, b float64, points int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := validateBounds(a, b); err != nil {
		return 0, err
	}
	if points < 3 {
		return 0, fmt.Errorf("%w: simpson needs at least 3 points, got %d", ErrInvalidSamples, points)
	}
	if a == b {
		return 0, nil
	}
	xs := floats.Span(make([]float64, points), a, b)
	ys := make([]float64, points)
	for i, x := range xs {
		ys[i] = f(x)
	}
	return integrate.Simpsons(xs, ys), nil
}
