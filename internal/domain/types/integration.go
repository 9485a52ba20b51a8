package types

// Interval is the closed sampling domain [A, B].
type Interval struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Width returns B-A.
func (i Interval) Width() float64 { return i.B - i.A }

// Reference is a deterministic baseline to compare estimates against.
type Reference struct {
	// Analytical is set only for integrands with a known closed form.
	Analytical *float64 `json:"analytical,omitempty"`
	Quadrature float64  `json:"quadrature"`
	// QuadratureError is the absolute error estimate of the quadrature.
	QuadratureError float64 `json:"quadrature_error"`
}

// Truth returns the best available ground truth: the analytical value if
// known, otherwise the quadrature.
func (r Reference) Truth() float64 {
	if r.Analytical != nil {
		return *r.Analytical
	}
	return r.Quadrature
}

// IntegrationRequest describes a Monte Carlo run over a named integrand.
type IntegrationRequest struct {
	Function string    `json:"function"`
	Interval Interval  `json:"interval"`
	Samples  int       `json:"samples"`
	Trials   int       `json:"trials,omitempty"`
	Seed     SeedLabel `json:"seed,omitempty"`
}

// Estimate is a single hit-or-miss integration result.
type Estimate struct {
	Function  string    `json:"function"`
	Interval  Interval  `json:"interval"`
	Samples   int       `json:"samples"`
	Seed      SeedLabel `json:"seed"`
	Value     float64   `json:"value"`
	Reference Reference `json:"reference"`
	AbsError  float64   `json:"abs_error"`
	RelError  float64   `json:"rel_error"`
}

// Experiment is the outcome of repeated independent trials.
type Experiment struct {
	Function  string    `json:"function"`
	Interval  Interval  `json:"interval"`
	Samples   int       `json:"samples"`
	Trials    int       `json:"trials"`
	Seed      SeedLabel `json:"seed"`
	Mean      float64   `json:"mean"`
	StdDev    float64   `json:"std_dev"`
	StdErr    float64   `json:"std_err"`
	Estimates []float64 `json:"estimates"`
	Reference Reference `json:"reference"`
	AbsError  float64   `json:"abs_error"`
	RelError  float64   `json:"rel_error"`
}

// SweepPoint is one row of a convergence sweep.
type SweepPoint struct {
	Samples  int     `json:"samples"`
	Trials   int     `json:"trials"`
	Value    float64 `json:"value"`
	AbsError float64 `json:"abs_error"`
	RelError float64 `json:"rel_error"`
}

// Convergence collects how the estimate behaves as samples per trial and
// trial counts grow.
type Convergence struct {
	Function  string       `json:"function"`
	Interval  Interval     `json:"interval"`
	Seed      SeedLabel    `json:"seed"`
	Reference Reference    `json:"reference"`
	BySamples []SweepPoint `json:"by_samples"`
	ByTrials  []SweepPoint `json:"by_trials"`
}
