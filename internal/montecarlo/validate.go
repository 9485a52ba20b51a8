package montecarlo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilFunc is returned when no integrand is supplied.
	ErrNilFunc = errors.New("integrand is nil")
	// ErrInvalidBounds is returned when a > b or a bound is not finite.
	ErrInvalidBounds = errors.New("bounds must be finite with a <= b")
	// ErrInvalidSamples is returned for a non-positive sample count.
	ErrInvalidSamples = errors.New("sample count must be positive")
	// ErrInvalidTrials is returned for a non-positive trial count.
	ErrInvalidTrials = errors.New("trial count must be positive")
	// ErrUnboundedIntegrand is returned when the grid maximum is infinite.
	ErrUnboundedIntegrand = errors.New("integrand is unbounded on the interval")
	// ErrUnknownFunction is returned by Lookup for unregistered names.
	ErrUnknownFunction = errors.New("unknown integrand")
)

func validateBounds(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a > b {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, a, b)
	}
	return nil
}

func validateRun(f Func, a, b float64, n int) error {
	if f == nil {
		return ErrNilFunc
	}
	if err := validateBounds(a, b); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, n)
	}
	return nil
}
