// Package montecarlo estimates definite integrals by hit-or-miss sampling.
//
// An Estimator bounds the integrand on [a, b] by sampling it on a fixed grid,
// then throws uniform points into the rectangle [a, b] x [0, max] and scales
// the fraction landing under the curve by the rectangle's area. The grid
// maximum is an approximation: a peak narrower than the grid spacing is cut
// off and the estimate is biased low. Integrands are assumed non-negative
// and bounded on the interval.
//
// Randomness always comes from the rand.Source handed to NewEstimator, so a
// run is reproducible from its seed label (see NewSource). Deterministic
// baselines are provided by Analytical (x² only), Quadrature (Gauss-Legendre)
// and Simpson.
package montecarlo
