package coins_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numlab/internal/coins"
	"numlab/internal/domain"
)

var standard = domain.Denominations{50, 25, 10, 5, 2, 1}

// bruteMin returns the fewest coins summing to amount, or -1.
func bruteMin(amount int, denoms domain.Denominations) int {
	if amount == 0 {
		return 0
	}
	if len(denoms) == 0 {
		return -1
	}
	best := -1
	coin := denoms[0]
	for k := 0; k*coin <= amount; k++ {
		rest := bruteMin(amount-k*coin, denoms[1:])
		if rest < 0 {
			continue
		}
		if best < 0 || k+rest < best {
			best = k + rest
		}
	}
	return best
}

func TestGreedy_Example113(t *testing.T) {
	got, err := coins.Greedy(113, standard)
	require.NoError(t, err)

	assert.Equal(t, domain.Decomposition{50: 2, 10: 1, 2: 1, 1: 1}, got.Coins)
	assert.True(t, got.Complete())
	assert.Equal(t, 5, got.Coins.Coins())
	assert.Equal(t, 113, got.Coins.Total())
}

func TestGreedy_TotalsMatchForStandardSet(t *testing.T) {
	for amount := 0; amount <= 1000; amount++ {
		got, err := coins.Greedy(amount, standard)
		require.NoError(t, err)
		require.Truef(t, got.Complete(), "amount %d left remainder %d", amount, got.Remainder)
		require.Equalf(t, amount, got.Coins.Total(), "amount %d", amount)
	}
}

func TestGreedy_ReportsRemainder(t *testing.T) {
	got, err := coins.Greedy(7, domain.Denominations{5, 3})
	require.NoError(t, err)

	assert.False(t, got.Complete())
	assert.Equal(t, 2, got.Remainder)
	assert.Equal(t, domain.Decomposition{5: 1}, got.Coins)
}

func TestGreedy_FollowsCallerOrder(t *testing.T) {
	got, err := coins.Greedy(10, domain.Denominations{1, 5})
	require.NoError(t, err)
	assert.Equal(t, domain.Decomposition{1: 10}, got.Coins)
}

func TestGreedy_ZeroAmount(t *testing.T) {
	got, err := coins.Greedy(0, standard)
	require.NoError(t, err)
	assert.Empty(t, got.Coins)
	assert.True(t, got.Complete())
}

func TestMinCoins_Example113(t *testing.T) {
	greedy, err := coins.Greedy(113, standard)
	require.NoError(t, err)
	got, err := coins.MinCoins(113, standard)
	require.NoError(t, err)

	assert.Equal(t, 113, got.Total())
	assert.LessOrEqual(t, got.Coins(), greedy.Coins.Coins())
}

func TestMinCoins_MinimalAgainstBruteForce(t *testing.T) {
	sets := []domain.Denominations{
		standard,
		{1, 3, 4},
		{25, 10, 1},
		{7, 5, 2},
		{9, 6, 1},
	}
	for _, denoms := range sets {
		for amount := 0; amount <= 60; amount++ {
			got, err := coins.MinCoins(amount, denoms)
			require.NoError(t, err)

			want := bruteMin(amount, denoms)
			if want < 0 {
				assert.Emptyf(t, got, "amount %d with %v should be unreachable", amount, denoms)
				continue
			}
			assert.Equalf(t, amount, got.Total(), "amount %d with %v", amount, denoms)
			assert.Equalf(t, want, got.Coins(), "amount %d with %v", amount, denoms)
		}
	}
}

func TestMinCoins_BeatsGreedyOnNonCanonicalSet(t *testing.T) {
	denoms := domain.Denominations{4, 3, 1}

	greedy, err := coins.Greedy(6, denoms)
	require.NoError(t, err)
	assert.Equal(t, domain.Decomposition{4: 1, 1: 2}, greedy.Coins)

	got, err := coins.MinCoins(6, denoms)
	require.NoError(t, err)
	assert.Equal(t, domain.Decomposition{3: 2}, got)
}

func TestMinCoins_Unreachable(t *testing.T) {
	got, err := coins.MinCoins(1, domain.Denominations{5, 3})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = coins.MinCoins(4, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMinCoins_ZeroAmount(t *testing.T) {
	for _, denoms := range []domain.Denominations{standard, {5, 3}, nil} {
		got, err := coins.MinCoins(0, denoms)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestValidation(t *testing.T) {
	_, err := coins.Greedy(-1, standard)
	assert.ErrorIs(t, err, coins.ErrNegativeAmount)

	_, err = coins.MinCoins(-5, standard)
	assert.ErrorIs(t, err, coins.ErrNegativeAmount)

	_, err = coins.MinCoins(10, domain.Denominations{5, 0})
	assert.ErrorIs(t, err, coins.ErrInvalidDenomination)

	_, err = coins.Greedy(10, domain.Denominations{-2})
	assert.ErrorIs(t, err, coins.ErrInvalidDenomination)

	_, _, err = coins.Canonical(domain.Denominations{3, -1})
	assert.ErrorIs(t, err, coins.ErrInvalidDenomination)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		denoms  domain.Denominations
		want    bool
		counter int
	}{
		{"standard", standard, true, 0},
		{"us coins", domain.Denominations{25, 10, 5, 1}, true, 0},
		{"unordered input", domain.Denominations{1, 2, 5, 10}, true, 0},
		{"three four one", domain.Denominations{4, 3, 1}, false, 6},
		{"no unit coin", domain.Denominations{5, 3}, false, 6},
		{"single coin", domain.Denominations{7}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, counter, err := coins.Canonical(tt.denoms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.counter, counter)
		})
	}
}

func TestCompare(t *testing.T) {
	got, err := coins.Compare(6, domain.Denominations{4, 3, 1})
	require.NoError(t, err)
	assert.True(t, got.Reachable)
	assert.False(t, got.GreedyOptimal)
	assert.Equal(t, 3, got.Greedy.Coins.Coins())
	assert.Equal(t, 2, got.Optimal.Coins())

	got, err = coins.Compare(1, domain.Denominations{5, 3})
	require.NoError(t, err)
	assert.False(t, got.Reachable)
	assert.False(t, got.GreedyOptimal)

	got, err = coins.Compare(113, standard)
	require.NoError(t, err)
	assert.True(t, got.GreedyOptimal)
}

func TestMinCoins_RejectsAmountsAboveTableLimit(t *testing.T) {
	_, err := coins.MinCoins(math.MaxInt, standard)
	assert.ErrorIs(t, err, coins.ErrAmountTooLarge)

	_, err = coins.MinCoins(coins.MaxTableAmount+1, standard)
	assert.ErrorIs(t, err, coins.ErrAmountTooLarge)

	_, err = coins.Compare(math.MaxInt, standard)
	assert.ErrorIs(t, err, coins.ErrAmountTooLarge)
}

func TestCanonical_HugeDenominationsDoNotOverflow(t *testing.T) {
	tests := []struct {
		name   string
		denoms domain.Denominations
	}{
		{"product wraps", domain.Denominations{1 << 62, 3}},
		{"product wraps negative", domain.Denominations{1 << 32, 1 << 31}},
		{"sum wraps", domain.Denominations{math.MaxInt, math.MaxInt - 1, 1}},
		{"product above limit", domain.Denominations{coins.MaxTableAmount, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := coins.Canonical(tt.denoms)
			assert.ErrorIs(t, err, coins.ErrAmountTooLarge)

			_, err = coins.SearchBound(tt.denoms)
			assert.ErrorIs(t, err, coins.ErrAmountTooLarge)
		})
	}
}

func TestSearchBound(t *testing.T) {
	bound, err := coins.SearchBound(domain.Denominations{1, 25, 50, 10})
	require.NoError(t, err)
	assert.Equal(t, 75, bound)

	bound, err = coins.SearchBound(domain.Denominations{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 15, bound)

	bound, err = coins.SearchBound(domain.Denominations{9})
	require.NoError(t, err)
	assert.Zero(t, bound)
}
