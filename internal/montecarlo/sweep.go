package montecarlo

import "numlab/internal/domain"

// SampleSweep runs one estimate per sample count and measures each against
// truth.
func (e *Estimator) SampleSweep(f Func, a, b float64, counts []int, truth float64) ([]domain.SweepPoint, error) {
	out := make([]domain.SweepPoint, 0, len(counts))
	for _, n := range counts {
		v, err := e.Estimate(f, a, b, n)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SweepPoint{
			Samples:  n,
			Trials:   1,
			Value:    v,
			AbsError: AbsError(v, truth),
			RelError: RelError(v, truth),
		})
	}
	return out, nil
}

// TrialSweep averages a growing number of trials of n samples each and
// measures each mean against truth.
func (e *Estimator) TrialSweep(f Func, a, b float64, n int, trials []int, truth float64) ([]domain.SweepPoint, error) {
	out := make([]domain.SweepPoint, 0, len(trials))
	for _, k := range trials {
		batch, err := e.Repeat(f, a, b, n, k)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SweepPoint{
			Samples:  n,
			Trials:   k,
			Value:    batch.Mean,
			AbsError: AbsError(batch.Mean, truth),
			RelError: RelError(batch.Mean, truth),
		})
	}
	return out, nil
}
