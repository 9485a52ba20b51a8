package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"numlab/internal/domain"
)

func convergenceCmd() *cobra.Command {
	var (
		f           integrationFlags
		points      []int
		trialCounts []int
	)
	cmd := &cobra.Command{
		Use:   "convergence",
		Short: "Show how the estimate improves with more samples and more trials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := f.request(cmd)
			c := appCtx.Config.Integration
			if !cmd.Flags().Changed("samples") {
				req.Samples = c.SweepSamples
			}
			if !cmd.Flags().Changed("points") {
				points = c.SampleCounts
			}
			if !cmd.Flags().Changed("trials-list") {
				trialCounts = c.TrialCounts
			}

			out, err := appCtx.Integration.Convergence(cmd.Context(), req, points, trialCounts)
			if err != nil {
				return err
			}
			printConvergence(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().IntSliceVar(&points, "points", nil, "sample counts for single estimates (default from config)")
	cmd.Flags().IntSliceVar(&trialCounts, "trials-list", nil, "trial counts to average (default from config)")
	return cmd
}

func printConvergence(w io.Writer, out domain.Convergence) {
	printHeader(w, out.Function, out.Interval, out.Reference)
	fmt.Fprintf(w, "  Seed:         %s\n\n", out.Seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "samples\ttrials\testimate\tabs error\trel error\t")
	for _, rows := range [][]domain.SweepPoint{out.BySamples, out.ByTrials} {
		for _, p := range rows {
			fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.3f%%\t\n", p.Samples, p.Trials, p.Value, p.AbsError, p.RelError*100)
		}
	}
	_ = tw.Flush()
}
