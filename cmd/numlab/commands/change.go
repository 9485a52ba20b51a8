package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"numlab/internal/domain"
)

// change <amount>: decompose amount into coins.
func changeCmd() *cobra.Command {
	var (
		denoms   []int
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "change <amount>",
		Short: "Decompose an amount into coins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[0], err)
			}
			set := domain.Denominations(denoms)
			if len(set) == 0 {
				set = appCtx.Config.Coins.Denominations
			}
			s := domain.ChangeStrategy(strategy)
			switch s {
			case domain.StrategyGreedy, domain.StrategyMin, domain.StrategyCompare:
			default:
				return fmt.Errorf("unknown strategy %q (greedy, min, compare)", strategy)
			}

			var out domain.ChangeComparison
			switch {
			case remote != nil:
				out, err = remote.Change(cmd.Context(), amount, set, s)
			case s == domain.StrategyGreedy:
				out.Greedy, err = appCtx.Change.Greedy(cmd.Context(), amount, set)
			case s == domain.StrategyMin:
				out.Optimal, err = appCtx.Change.MinCoins(cmd.Context(), amount, set)
				out.Reachable = amount == 0 || len(out.Optimal) > 0
			default:
				out, err = appCtx.Change.Compare(cmd.Context(), amount, set)
			}
			if err != nil {
				return err
			}
			printChange(cmd.OutOrStdout(), amount, s, out)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&denoms, "denoms", nil, "denominations in greedy order (default from config)")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyCompare), "greedy, min or compare")
	return cmd
}

func printChange(w io.Writer, amount int, s domain.ChangeStrategy, out domain.ChangeComparison) {
	fmt.Fprintf(w, "Amount: %d\n", amount)
	if s != domain.StrategyMin {
		fmt.Fprintf(w, "Greedy:  %s", formatCoins(out.Greedy.Coins))
		if !out.Greedy.Complete() {
			fmt.Fprintf(w, ", remainder %d", out.Greedy.Remainder)
		}
		fmt.Fprintln(w)
	}
	if s != domain.StrategyGreedy {
		if out.Reachable {
			fmt.Fprintf(w, "Optimal: %s\n", formatCoins(out.Optimal))
		} else {
			fmt.Fprintln(w, "Optimal: unreachable")
		}
	}
	if s == domain.StrategyCompare && out.Reachable {
		if out.GreedyOptimal {
			fmt.Fprintln(w, "Greedy is optimal.")
		} else {
			fmt.Fprintln(w, "Greedy is not optimal.")
		}
	}
}

func formatCoins(d domain.Decomposition) string {
	if len(d) == 0 {
		return "none (0 coins)"
	}
	parts := make([]string, 0, len(d))
	for _, v := range d.Values() {
		parts = append(parts, fmt.Sprintf("%dx%d", v, d[v]))
	}
	return fmt.Sprintf("%s (%d coins)", strings.Join(parts, " "), d.Coins())
}
