package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"numlab/internal/domain"
)

type integrationFlags struct {
	function string
	a, b     float64
	samples  int
	seed     string
}

func (f *integrationFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.function, "func", "", "integrand: square, cube, sin, exp, sqrt (default from config)")
	cmd.Flags().Float64Var(&f.a, "a", 0, "lower bound (default from config)")
	cmd.Flags().Float64Var(&f.b, "b", 0, "upper bound (default from config)")
	cmd.Flags().IntVar(&f.samples, "samples", 0, "points per estimate (default from config)")
	cmd.Flags().StringVar(&f.seed, "seed", "", "seed label; the same label replays the same samples")
}

// request merges set flags over the configured defaults.
func (f *integrationFlags) request(cmd *cobra.Command) domain.IntegrationRequest {
	c := appCtx.Config.Integration
	req := domain.IntegrationRequest{
		Function: c.Function,
		Interval: domain.Interval{A: c.A, B: c.B},
		Samples:  c.Samples,
		Trials:   c.Trials,
		Seed:     domain.SeedLabel(c.Seed),
	}
	flags := cmd.Flags()
	if flags.Changed("func") {
		req.Function = f.function
	}
	if flags.Changed("a") {
		req.Interval.A = f.a
	}
	if flags.Changed("b") {
		req.Interval.B = f.b
	}
	if flags.Changed("samples") {
		req.Samples = f.samples
	}
	if flags.Changed("seed") {
		req.Seed = domain.SeedLabel(f.seed)
	}
	return req
}

func integrateCmd() *cobra.Command {
	var (
		f      integrationFlags
		trials int
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Estimate a definite integral by hit-or-miss Monte Carlo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := f.request(cmd)
			if cmd.Flags().Changed("trials") {
				req.Trials = trials
			}
			w := cmd.OutOrStdout()

			if remote != nil {
				out, err := remote.Integrate(cmd.Context(), req)
				if err != nil {
					return err
				}
				printExperiment(w, out)
				return nil
			}
			if req.Trials == 1 {
				out, err := appCtx.Integration.Integrate(cmd.Context(), req)
				if err != nil {
					return err
				}
				printEstimate(w, out)
				return nil
			}
			out, err := appCtx.Integration.Experiment(cmd.Context(), req)
			if err != nil {
				return err
			}
			printExperiment(w, out)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().IntVar(&trials, "trials", 0, "independent estimates to average; 1 runs a single estimate (default from config)")
	return cmd
}

func printHeader(w io.Writer, function string, iv domain.Interval, ref domain.Reference) {
	fmt.Fprintf(w, "Integral of %s over [%g, %g]\n", function, iv.A, iv.B)
	if ref.Analytical != nil {
		fmt.Fprintf(w, "  Analytical:   %.6f\n", *ref.Analytical)
	}
	fmt.Fprintf(w, "  Quadrature:   %.6f ± %.2e\n", ref.Quadrature, ref.QuadratureError)
}

func printEstimate(w io.Writer, out domain.Estimate) {
	printHeader(w, out.Function, out.Interval, out.Reference)
	fmt.Fprintf(w, "  Monte Carlo:  %.6f (N=%d, seed=%s)\n", out.Value, out.Samples, out.Seed)
	fmt.Fprintf(w, "  Error:        %.6f (%.2f%%)\n", out.AbsError, out.RelError*100)
}

func printExperiment(w io.Writer, out domain.Experiment) {
	printHeader(w, out.Function, out.Interval, out.Reference)
	fmt.Fprintf(w, "  Monte Carlo:  %.6f (mean of %d x N=%d, seed=%s)\n", out.Mean, out.Trials, out.Samples, out.Seed)
	fmt.Fprintf(w, "  Std dev:      %.6f (std err %.6f)\n", out.StdDev, out.StdErr)
	fmt.Fprintf(w, "  Error:        %.6f (%.3f%%)\n", out.AbsError, out.RelError*100)
}
