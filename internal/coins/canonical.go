package coins

import (
	"fmt"
	"sort"

	"numlab/internal/domain"
)

// Canonical reports whether greedy, applied to denoms in descending order,
// yields an optimal decomposition for every amount that can be formed.
//
// When it does not, the smallest counterexample amount is returned: one
// where greedy stops with a remainder although a decomposition exists, or
// uses more coins than MinCoins. With a unit coin present the search runs
// up to the sum of the two largest denominations, which is where any
// counterexample must appear (Kozen and Zaks). Without a unit coin the
// bound is their product, which is a heuristic. A bound above
// MaxTableAmount fails with ErrAmountTooLarge.
func Canonical(denoms domain.Denominations) (bool, int, error) {
	if err := validateDenominations(denoms); err != nil {
		return false, 0, err
	}
	sorted := descending(denoms)
	if len(sorted) < 2 {
		// A single coin value is either used exactly or not at all.
		return true, 0, nil
	}

	limit, err := searchBound(sorted)
	if err != nil {
		return false, 0, err
	}
	best, _ := minTable(limit, sorted)
	for v := 1; v <= limit; v++ {
		if best[v] == unreachable {
			continue
		}
		g, _ := Greedy(v, sorted)
		if !g.Complete() || g.Coins.Coins() > best[v] {
			return false, v, nil
		}
	}
	return true, 0, nil
}

// descending returns a sorted copy of denoms with duplicates removed.
func descending(denoms domain.Denominations) domain.Denominations {
	seen := make(map[int]struct{}, len(denoms))
	out := make(domain.Denominations, 0, len(denoms))
	for _, d := range denoms {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// SearchBound returns the largest amount Canonical examines for denoms.
func SearchBound(denoms domain.Denominations) (int, error) {
	if err := validateDenominations(denoms); err != nil {
		return 0, err
	}
	return searchBound(descending(denoms))
}

// searchBound computes the bound without overflowing: both operands are
// checked against MaxTableAmount before they are combined.
func searchBound(sorted domain.Denominations) (int, error) {
	if len(sorted) < 2 {
		return 0, nil
	}
	c1, c2 := sorted[0], sorted[1]
	if sorted[len(sorted)-1] == 1 {
		if c1 > MaxTableAmount-c2 {
			return 0, fmt.Errorf("%w: search bound %d+%d > %d", ErrAmountTooLarge, c1, c2, MaxTableAmount)
		}
		return c1 + c2, nil
	}
	if c2 > MaxTableAmount/c1 {
		return 0, fmt.Errorf("%w: search bound %d*%d > %d", ErrAmountTooLarge, c1, c2, MaxTableAmount)
	}
	return c1 * c2, nil
}
