package interfaces

import (
	"context"

	domaintypes "numlab/internal/domain/types"
)

// ChangeStrategy selects which coin decomposition a remote lab runs.
type ChangeStrategy string

const (
	StrategyGreedy  ChangeStrategy = "greedy"
	StrategyMin     ChangeStrategy = "min"
	StrategyCompare ChangeStrategy = "compare"
)

// LabClient talks to a remote labd daemon. A remote comparison always
// carries both decompositions; callers pick the half they asked for.
type LabClient interface {
	Change(
		ctx context.Context,
		amount int,
		denoms domaintypes.Denominations,
		strategy ChangeStrategy,
	) (domaintypes.ChangeComparison, error)
	Integrate(ctx context.Context, req domaintypes.IntegrationRequest) (domaintypes.Experiment, error)
}
