package coins

import "numlab/internal/domain"

// Compare runs Greedy and MinCoins on the same input.
func Compare(amount int, denoms domain.Denominations) (domain.ChangeComparison, error) {
	greedy, err := Greedy(amount, denoms)
	if err != nil {
		return domain.ChangeComparison{}, err
	}
	optimal, err := MinCoins(amount, denoms)
	if err != nil {
		return domain.ChangeComparison{}, err
	}

	reachable := amount == 0 || len(optimal) > 0
	return domain.ChangeComparison{
		Amount:        amount,
		Denominations: append(domain.Denominations(nil), denoms...),
		Greedy:        greedy,
		Optimal:       optimal,
		Reachable:     reachable,
		GreedyOptimal: greedy.Complete() && greedy.Coins.Coins() <= optimal.Coins(),
	}, nil
}
