package coins

import "numlab/internal/domain"

// Greedy decomposes amount by taking, for each denomination in the given
// order, as many coins as fit in the remaining balance.
//
// The pass stops as soon as the balance reaches zero. If the denominations
// cannot cover the balance the returned Change carries the residue in
// Remainder; the coins taken so far are still returned.
func Greedy(amount int, denoms domain.Denominations) (domain.Change, error) {
	if err := validate(amount, denoms); err != nil {
		return domain.Change{}, err
	}

	out := domain.Change{Coins: domain.Decomposition{}}
	remaining := amount
	for _, coin := range denoms {
		if remaining == 0 {
			break
		}
		if count := remaining / coin; count > 0 {
			out.Coins[coin] += count
			remaining -= coin * count
		}
	}
	out.Remainder = remaining
	return out, nil
}
