package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"numlab/internal/domain"
	"numlab/internal/metrics"
	"numlab/internal/montecarlo"
)

// DefaultMaxSamples bounds samples*trials for a single request.
const DefaultMaxSamples = 100_000_000

// ErrSampleBudgetExceeded is returned when a request asks for more samples
// than the configured budget.
var ErrSampleBudgetExceeded = errors.New("sample budget exceeded")

// Service runs hit-or-miss integrations over built-in integrands.
type Service struct {
	gridSize   int
	maxSamples int
	reports    domain.ReportStore
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithReports persists every result to store.
func WithReports(store domain.ReportStore) Option {
	return func(s *Service) {
		s.reports = store
	}
}

// WithGridSize sets the grid used to bound integrands.
func WithGridSize(n int) Option {
	return func(s *Service) {
		s.gridSize = n
	}
}

// WithMaxSamples caps samples*trials per request; n <= 0 keeps the default.
func WithMaxSamples(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSamples = n
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{gridSize: montecarlo.DefaultGridSize, maxSamples: DefaultMaxSamples}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Integrate produces a single estimate.
func (s *Service) Integrate(ctx context.Context, req domain.IntegrationRequest) (domain.Estimate, error) {
	run, err := s.prepare(ctx, req, 1)
	if err != nil {
		return domain.Estimate{}, err
	}
	a, b := req.Interval.A, req.Interval.B
	v, err := run.est.Estimate(run.in.F, a, b, req.Samples)
	if err != nil {
		return domain.Estimate{}, err
	}

	truth := run.ref.Truth()
	out := domain.Estimate{
		Function:  run.in.Name,
		Interval:  req.Interval,
		Samples:   req.Samples,
		Seed:      run.seed,
		Value:     v,
		Reference: run.ref,
		AbsError:  montecarlo.AbsError(v, truth),
		RelError:  montecarlo.RelError(v, truth),
	}
	s.logger.DebugContext(ctx, "estimate",
		"function", out.Function,
		"samples", out.Samples,
		"seed", out.Seed,
		"value", out.Value,
		"rel_error", out.RelError,
	)
	s.observe(string(domain.ReportEstimate), out.Function, out.Samples, out.RelError)
	if err := s.save(ctx, domain.ReportEstimate, out); err != nil {
		return domain.Estimate{}, err
	}
	return out, nil
}

// Experiment repeats the estimate req.Trials times.
func (s *Service) Experiment(ctx context.Context, req domain.IntegrationRequest) (domain.Experiment, error) {
	run, err := s.prepare(ctx, req, req.Trials)
	if err != nil {
		return domain.Experiment{}, err
	}
	a, b := req.Interval.A, req.Interval.B

	estimates := make([]float64, 0, req.Trials)
	for range req.Trials {
		if err := ctx.Err(); err != nil {
			return domain.Experiment{}, err
		}
		v, err := run.est.Estimate(run.in.F, a, b, req.Samples)
		if err != nil {
			return domain.Experiment{}, err
		}
		estimates = append(estimates, v)
	}
	batch := montecarlo.NewBatch(estimates)

	truth := run.ref.Truth()
	out := domain.Experiment{
		Function:  run.in.Name,
		Interval:  req.Interval,
		Samples:   req.Samples,
		Trials:    req.Trials,
		Seed:      run.seed,
		Mean:      batch.Mean,
		StdDev:    batch.StdDev(),
		StdErr:    batch.StdErr(),
		Estimates: batch.Estimates,
		Reference: run.ref,
		AbsError:  montecarlo.AbsError(batch.Mean, truth),
		RelError:  montecarlo.RelError(batch.Mean, truth),
	}
	s.logger.DebugContext(ctx, "experiment",
		"function", out.Function,
		"samples", out.Samples,
		"trials", out.Trials,
		"seed", out.Seed,
		"mean", out.Mean,
		"std_dev", out.StdDev,
	)
	s.observe(string(domain.ReportExperiment), out.Function, out.Samples*out.Trials, out.RelError)
	if err := s.save(ctx, domain.ReportExperiment, out); err != nil {
		return domain.Experiment{}, err
	}
	return out, nil
}

// Convergence runs one estimate per entry of sampleCounts, then averages
// req.Samples-point trials for every entry of trialCounts.
func (s *Service) Convergence(
	ctx context.Context,
	req domain.IntegrationRequest,
	sampleCounts []int,
	trialCounts []int,
) (domain.Convergence, error) {
	budget, err := s.sweepBudget(req.Samples, sampleCounts, trialCounts)
	if err != nil {
		return domain.Convergence{}, err
	}
	run, err := s.prepareBudget(ctx, req, budget)
	if err != nil {
		return domain.Convergence{}, err
	}
	a, b := req.Interval.A, req.Interval.B
	truth := run.ref.Truth()

	bySamples, err := run.est.SampleSweep(run.in.F, a, b, sampleCounts, truth)
	if err != nil {
		return domain.Convergence{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Convergence{}, err
	}
	byTrials, err := run.est.TrialSweep(run.in.F, a, b, req.Samples, trialCounts, truth)
	if err != nil {
		return domain.Convergence{}, err
	}

	out := domain.Convergence{
		Function:  run.in.Name,
		Interval:  req.Interval,
		Seed:      run.seed,
		Reference: run.ref,
		BySamples: bySamples,
		ByTrials:  byTrials,
	}
	for _, p := range bySamples {
		s.observe(string(domain.ReportConvergence), out.Function, p.Samples, p.RelError)
	}
	for _, p := range byTrials {
		s.observe(string(domain.ReportConvergence), out.Function, p.Samples*p.Trials, p.RelError)
	}
	if err := s.save(ctx, domain.ReportConvergence, out); err != nil {
		return domain.Convergence{}, err
	}
	return out, nil
}

type run struct {
	in   montecarlo.Integrand
	est  *montecarlo.Estimator
	seed domain.SeedLabel
	ref  domain.Reference
}

func (s *Service) prepare(ctx context.Context, req domain.IntegrationRequest, trials int) (run, error) {
	budget, err := s.runBudget(req.Samples, trials)
	if err != nil {
		return run{}, err
	}
	return s.prepareBudget(ctx, req, budget)
}

// runBudget returns samples*trials, refusing non-positive counts and
// products above maxSamples before they are formed.
func (s *Service) runBudget(samples, trials int) (int, error) {
	if samples <= 0 {
		return 0, fmt.Errorf("%w: got %d", montecarlo.ErrInvalidSamples, samples)
	}
	if trials <= 0 {
		return 0, fmt.Errorf("%w: got %d", montecarlo.ErrInvalidTrials, trials)
	}
	if trials > s.maxSamples/samples {
		return 0, fmt.Errorf("%w: %d samples x %d trials > %d", ErrSampleBudgetExceeded, samples, trials, s.maxSamples)
	}
	return samples * trials, nil
}

// sweepBudget totals a convergence sweep. Every count is checked before
// anything is summed, and the running total never exceeds maxSamples.
func (s *Service) sweepBudget(samples int, sampleCounts, trialCounts []int) (int, error) {
	for _, n := range sampleCounts {
		if n <= 0 {
			return 0, fmt.Errorf("%w: got %d", montecarlo.ErrInvalidSamples, n)
		}
	}
	for _, k := range trialCounts {
		if _, err := s.runBudget(samples, k); err != nil {
			return 0, err
		}
	}

	budget := 0
	add := func(n int) error {
		if n > s.maxSamples-budget {
			return fmt.Errorf("%w: sweep needs more than %d samples", ErrSampleBudgetExceeded, s.maxSamples)
		}
		budget += n
		return nil
	}
	for _, n := range sampleCounts {
		if err := add(n); err != nil {
			return 0, err
		}
	}
	for _, k := range trialCounts {
		if err := add(samples * k); err != nil {
			return 0, err
		}
	}
	return budget, nil
}

func (s *Service) prepareBudget(ctx context.Context, req domain.IntegrationRequest, budget int) (run, error) {
	if err := ctx.Err(); err != nil {
		return run{}, err
	}
	if budget > s.maxSamples {
		return run{}, fmt.Errorf("%w: %d > %d", ErrSampleBudgetExceeded, budget, s.maxSamples)
	}
	in, err := montecarlo.Lookup(req.Function)
	if err != nil {
		return run{}, err
	}
	ref, err := reference(in, req.Interval)
	if err != nil {
		return run{}, err
	}
	src, seed := montecarlo.NewSource(req.Seed)
	return run{
		in:   in,
		est:  montecarlo.NewEstimator(src, montecarlo.WithGridSize(s.gridSize)),
		seed: seed,
		ref:  ref,
	}, nil
}

func reference(in montecarlo.Integrand, iv domain.Interval) (domain.Reference, error) {
	q, qerr, err := montecarlo.Quadrature(in.F, iv.A, iv.B)
	if err != nil {
		return domain.Reference{}, err
	}
	ref := domain.Reference{Quadrature: q, QuadratureError: qerr}
	if in.Exact != nil {
		exact := in.Exact(iv.A, iv.B)
		ref.Analytical = &exact
	}
	return ref, nil
}

func (s *Service) observe(kind, function string, samples int, relErr float64) {
	if s.metrics != nil {
		s.metrics.ObserveIntegration(kind, function, samples, relErr)
	}
}

func (s *Service) save(ctx context.Context, kind domain.ReportKind, payload any) error {
	if s.reports == nil {
		return nil
	}
	r, err := s.reports.SaveReport(kind, payload)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementReportSaveFailures()
		}
		return fmt.Errorf("save %s report: %w", kind, err)
	}
	if s.metrics != nil {
		s.metrics.ObserveReportSaved(string(kind))
	}
	s.logger.InfoContext(ctx, "report saved", "id", r.ID, "kind", kind)
	return nil
}

// Compile-time assertion that Service implements domain.IntegrationService.
var _ domain.IntegrationService = (*Service)(nil)
