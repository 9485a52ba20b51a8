package interfaces

import (
	"context"

	domaintypes "numlab/internal/domain/types"
)

// ChangeService decomposes amounts into coins.
type ChangeService interface {
	Greedy(ctx context.Context, amount int, denoms domaintypes.Denominations) (domaintypes.Change, error)
	MinCoins(ctx context.Context, amount int, denoms domaintypes.Denominations) (domaintypes.Decomposition, error)
	Compare(ctx context.Context, amount int, denoms domaintypes.Denominations) (domaintypes.ChangeComparison, error)
	Canonical(ctx context.Context, denoms domaintypes.Denominations) (domaintypes.CanonicalCheck, error)
}

// IntegrationService runs Monte Carlo integrations against reference values.
type IntegrationService interface {
	Integrate(ctx context.Context, req domaintypes.IntegrationRequest) (domaintypes.Estimate, error)
	Experiment(ctx context.Context, req domaintypes.IntegrationRequest) (domaintypes.Experiment, error)
	Convergence(
		ctx context.Context,
		req domaintypes.IntegrationRequest,
		sampleCounts []int,
		trialCounts []int,
	) (domaintypes.Convergence, error)
}
