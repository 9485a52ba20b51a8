package montecarlo

import (
	"fmt"
	"math"
	"sort"
)

// DefaultFunction is the integrand used when none is named.
const DefaultFunction = "square"

// Integrand is a named built-in function.
type Integrand struct {
	Name string
	F    Func
	// Exact returns the closed-form integral over [a, b], if known.
	Exact func(a, b float64) float64
}

var integrands = map[string]Integrand{
	"square": {Name: "square", F: func(x float64) float64 { return x * x }, Exact: Analytical},
	"cube":   {Name: "cube", F: func(x float64) float64 { return x * x * x }},
	"sin":    {Name: "sin", F: math.Sin},
	"exp":    {Name: "exp", F: math.Exp},
	"sqrt":   {Name: "sqrt", F: math.Sqrt},
}

// Lookup returns the built-in integrand called name. An empty name selects
// DefaultFunction.
func Lookup(name string) (Integrand, error) {
	if name == "" {
		name = DefaultFunction
	}
	in, ok := integrands[name]
	if !ok {
		return Integrand{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownFunction, name, Functions())
	}
	return in, nil
}

// Functions lists the built-in integrand names.
func Functions() []string {
	out := make([]string, 0, len(integrands))
	for name := range integrands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
