package types

import "sort"

// Denominations is an ordered sequence of positive coin values. Greedy
// decomposition walks it in the given order.
type Denominations []int

// Decomposition maps a coin value to a positive count. Values with a zero
// count are never present.
type Decomposition map[int]int

// Total returns sum(value*count).
func (d Decomposition) Total() int {
	total := 0
	for value, count := range d {
		total += value * count
	}
	return total
}

// Coins returns the number of coins in the decomposition.
func (d Decomposition) Coins() int {
	n := 0
	for _, count := range d {
		n += count
	}
	return n
}

// Values returns the coin values present, largest first.
func (d Decomposition) Values() []int {
	out := make([]int, 0, len(d))
	for value := range d {
		out = append(out, value)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Change is the outcome of a greedy pass. Remainder is the balance the pass
// could not cover; it is zero when the decomposition is complete.
type Change struct {
	Coins     Decomposition `json:"coins"`
	Remainder int           `json:"remainder"`
}

// Complete reports whether the greedy pass reached a zero balance.
func (c Change) Complete() bool { return c.Remainder == 0 }

// ChangeComparison contrasts the greedy and minimum-count decompositions of
// the same amount.
type ChangeComparison struct {
	Amount        int           `json:"amount"`
	Denominations Denominations `json:"denominations"`
	Greedy        Change        `json:"greedy"`
	Optimal       Decomposition `json:"optimal"`
	// Reachable is false when no decomposition of Amount exists.
	Reachable bool `json:"reachable"`
	// GreedyOptimal is true when greedy is complete and uses no more coins
	// than the optimum.
	GreedyOptimal bool `json:"greedy_optimal"`
}

// CanonicalCheck reports whether greedy is optimal for a denomination set.
type CanonicalCheck struct {
	Denominations Denominations `json:"denominations"`
	Canonical     bool          `json:"canonical"`
	// Counterexample is the smallest amount greedy gets wrong, or zero.
	Counterexample int `json:"counterexample,omitempty"`
}
