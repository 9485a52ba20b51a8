package coins

import (
	"math"

	"numlab/internal/domain"
)

const unreachable = math.MaxInt

// MinCoins returns a decomposition of amount using the fewest possible coins.
//
// It fills best[v], the minimum coin count for every v in [0, amount], in
// increasing order and keeps the denomination that achieved it in via[v].
// Ties go to the denomination listed first. The decomposition is rebuilt by
// walking via back from amount to zero.
//
// An empty decomposition is returned for amount 0 and for amounts that
// cannot be formed from denoms. Amounts above MaxTableAmount fail with
// ErrAmountTooLarge. Time is O(amount*len(denoms)), space O(amount).
func MinCoins(amount int, denoms domain.Denominations) (domain.Decomposition, error) {
	if err := validate(amount, denoms); err != nil {
		return nil, err
	}
	if err := validateTable(amount); err != nil {
		return nil, err
	}
	best, via := minTable(amount, denoms)
	if best[amount] == unreachable {
		return domain.Decomposition{}, nil
	}
	return rebuild(amount, via), nil
}

// minTable fills the minimum-count and back-pointer tables up to limit.
func minTable(limit int, denoms domain.Denominations) (best, via []int) {
	best = make([]int, limit+1)
	via = make([]int, limit+1)
	for v := 1; v <= limit; v++ {
		best[v] = unreachable
		for _, coin := range denoms {
			if coin > v || best[v-coin] == unreachable {
				continue
			}
			if best[v-coin]+1 < best[v] {
				best[v] = best[v-coin] + 1
				via[v] = coin
			}
		}
	}
	return best, via
}

func rebuild(amount int, via []int) domain.Decomposition {
	out := domain.Decomposition{}
	for v := amount; v > 0; v -= via[v] {
		out[via[v]]++
	}
	return out
}
