package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"numlab/internal/domain"
)

func canonicalCmd() *cobra.Command {
	var denoms []int
	cmd := &cobra.Command{
		Use:   "canonical",
		Short: "Check whether greedy change is optimal for a denomination set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := domain.Denominations(denoms)
			if len(set) == 0 {
				set = appCtx.Config.Coins.Denominations
			}
			out, err := appCtx.Change.Canonical(cmd.Context(), set)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Canonical {
				fmt.Fprintf(w, "%v is canonical: greedy change is always optimal.\n", []int(set))
				return nil
			}
			fmt.Fprintf(w, "%v is not canonical: greedy fails first at amount %d.\n", []int(set), out.Counterexample)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&denoms, "denoms", nil, "denominations (default from config)")
	return cmd
}
