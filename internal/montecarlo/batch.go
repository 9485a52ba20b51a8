package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Batch is the outcome of repeated independent estimates.
type Batch struct {
	Mean      float64
	Estimates []float64
}

// NewBatch computes the mean of estimates.
func NewBatch(estimates []float64) Batch {
	return Batch{Mean: stat.Mean(estimates, nil), Estimates: estimates}
}

// StdDev returns the population standard deviation of the estimates.
func (b Batch) StdDev() float64 {
	if len(b.Estimates) < 2 {
		return 0
	}
	_, std := stat.PopMeanStdDev(b.Estimates, nil)
	return std
}

// StdErr returns the standard error of the mean, StdDev()/sqrt(n), so it
// uses the same population deviation the batch reports.
func (b Batch) StdErr() float64 {
	if len(b.Estimates) < 2 {
		return 0
	}
	return stat.StdErr(b.StdDev(), float64(len(b.Estimates)))
}

// AbsError returns |value-truth|.
func AbsError(value, truth float64) float64 { return math.Abs(value - truth) }

// RelError returns |value-truth|/|truth|, or 0 when truth is 0.
func RelError(value, truth float64) float64 {
	if truth == 0 {
		return 0
	}
	return math.Abs(value-truth) / math.Abs(truth)
}
