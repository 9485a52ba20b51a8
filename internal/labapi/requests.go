package labapi

import (
	"fmt"

	"numlab/internal/domain"
)

// ChangeRequest is the body of POST /v1/change.
type ChangeRequest struct {
	Amount        int                   `json:"amount"`
	Denominations domain.Denominations  `json:"denominations,omitempty"`
	Strategy      domain.ChangeStrategy `json:"strategy,omitempty"`
}

// IntegrateRequest is the body of POST /v1/integrate.
type IntegrateRequest struct {
	Function string           `json:"function,omitempty"`
	A        float64          `json:"a"`
	B        float64          `json:"b"`
	Samples  int              `json:"samples"`
	Trials   int              `json:"trials,omitempty"`
	Seed     domain.SeedLabel `json:"seed,omitempty"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (r ChangeRequest) strategy() (domain.ChangeStrategy, error) {
	switch r.Strategy {
	case "":
		return domain.StrategyCompare, nil
	case domain.StrategyGreedy, domain.StrategyMin, domain.StrategyCompare:
		return r.Strategy, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", r.Strategy)
	}
}

func (r IntegrateRequest) toDomain() domain.IntegrationRequest {
	trials := r.Trials
	if trials == 0 {
		trials = 1
	}
	return domain.IntegrationRequest{
		Function: r.Function,
		Interval: domain.Interval{A: r.A, B: r.B},
		Samples:  r.Samples,
		Trials:   trials,
		Seed:     r.Seed,
	}
}
