// Package coins decomposes an amount into coins of given denominations.
//
// Two strategies are provided:
//
//   - Greedy takes as many of each denomination as fit, in caller order. It
//     is optimal only for canonical sets such as {50, 25, 10, 5, 2, 1}; for
//     other sets it may use extra coins or stop with a nonzero remainder,
//     which is reported in domain.Change rather than dropped.
//   - MinCoins runs the unbounded coin-change dynamic program and always
//     returns a decomposition with the fewest coins, or an empty one when the
//     amount cannot be formed.
//
// Canonical checks whether greedy is safe for a denomination set, and
// Compare runs both strategies side by side.
//
// All functions are pure: denominations are passed explicitly on every call
// and nothing is cached between calls.
package coins
