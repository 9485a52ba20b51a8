package change

import (
	"context"
	"fmt"
	"log/slog"

	"numlab/internal/coins"
	"numlab/internal/domain"
	"numlab/internal/metrics"
)

// DefaultMaxAmount bounds the amounts MinCoins will build a table for.
const DefaultMaxAmount = 10_000_000

// ErrAmountTooLarge is returned when an amount, or the search bound of a
// canonical check, exceeds the configured limit or coins.MaxTableAmount.
var ErrAmountTooLarge = coins.ErrAmountTooLarge

// Service decomposes amounts into coins.
type Service struct {
	maxAmount int
	reports   domain.ReportStore
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

// WithMaxAmount sets the largest accepted amount; n <= 0 keeps the default.
func WithMaxAmount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAmount = n
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{maxAmount: DefaultMaxAmount}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Greedy runs the greedy pass. An incomplete result is returned as is and
// logged at warn level.
func (s *Service) Greedy(ctx context.Context, amount int, denoms domain.Denominations) (domain.Change, error) {
	if err := s.admit(ctx, amount); err != nil {
		return domain.Change{}, err
	}
	out, err := coins.Greedy(amount, denoms)
	if err != nil {
		return domain.Change{}, err
	}
	s.observe(domain.StrategyGreedy)
	if !out.Complete() {
		s.warnIncomplete(ctx, amount, denoms, out.Remainder)
	}
	if err := s.save(ctx, domain.ReportChange, domain.ChangeComparison{
		Amount:        amount,
		Denominations: denoms,
		Greedy:        out,
	}); err != nil {
		return domain.Change{}, err
	}
	return out, nil
}

// MinCoins returns the minimum-count decomposition, empty when unreachable.
func (s *Service) MinCoins(ctx context.Context, amount int, denoms domain.Denominations) (domain.Decomposition, error) {
	if err := s.admit(ctx, amount); err != nil {
		return nil, err
	}
	out, err := coins.MinCoins(amount, denoms)
	if err != nil {
		return nil, err
	}
	s.observe(domain.StrategyMin)
	reachable := amount == 0 || len(out) > 0
	if !reachable {
		s.logger.InfoContext(ctx, "amount unreachable", "amount", amount, "denominations", denoms)
		if s.metrics != nil {
			s.metrics.IncrementUnreachable()
		}
	}
	if err := s.save(ctx, domain.ReportChange, domain.ChangeComparison{
		Amount:        amount,
		Denominations: denoms,
		Optimal:       out,
		Reachable:     reachable,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Compare runs both strategies on the same input.
func (s *Service) Compare(ctx context.Context, amount int, denoms domain.Denominations) (domain.ChangeComparison, error) {
	if err := s.admit(ctx, amount); err != nil {
		return domain.ChangeComparison{}, err
	}
	out, err := coins.Compare(amount, denoms)
	if err != nil {
		return domain.ChangeComparison{}, err
	}
	s.observe(domain.StrategyCompare)
	if !out.Greedy.Complete() {
		s.warnIncomplete(ctx, amount, denoms, out.Greedy.Remainder)
	}
	if out.Reachable && !out.GreedyOptimal {
		s.logger.InfoContext(ctx, "greedy not optimal",
			"amount", amount,
			"greedy_coins", out.Greedy.Coins.Coins(),
			"optimal_coins", out.Optimal.Coins(),
		)
		if s.metrics != nil {
			s.metrics.IncrementGreedySuboptimal()
		}
	}
	if err := s.save(ctx, domain.ReportChange, out); err != nil {
		return domain.ChangeComparison{}, err
	}
	return out, nil
}

// Canonical checks whether greedy is optimal for denoms.
func (s *Service) Canonical(ctx context.Context, denoms domain.Denominations) (domain.CanonicalCheck, error) {
	if err := ctx.Err(); err != nil {
		return domain.CanonicalCheck{}, err
	}
	bound, err := coins.SearchBound(denoms)
	if err != nil {
		return domain.CanonicalCheck{}, err
	}
	if bound > s.maxAmount {
		return domain.CanonicalCheck{}, fmt.Errorf("%w: search bound %d > %d", ErrAmountTooLarge, bound, s.maxAmount)
	}
	ok, counter, err := coins.Canonical(denoms)
	if err != nil {
		return domain.CanonicalCheck{}, err
	}
	out := domain.CanonicalCheck{Denominations: denoms, Canonical: ok, Counterexample: counter}
	s.logger.DebugContext(ctx, "canonical check", "denominations", denoms, "canonical", ok, "counterexample", counter)
	if err := s.save(ctx, domain.ReportCanonical, out); err != nil {
		return domain.CanonicalCheck{}, err
	}
	return out, nil
}

func (s *Service) admit(ctx context.Context, amount int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount > s.maxAmount {
		return fmt.Errorf("%w: %d > %d", ErrAmountTooLarge, amount, s.maxAmount)
	}
	return nil
}

func (s *Service) observe(strategy domain.ChangeStrategy) {
	if s.metrics != nil {
		s.metrics.ObserveChange(string(strategy))
	}
}

func (s *Service) warnIncomplete(ctx context.Context, amount int, denoms domain.Denominations, remainder int) {
	s.logger.WarnContext(ctx, "greedy change incomplete",
		"amount", amount,
		"denominations", denoms,
		"remainder", remainder,
	)
	if s.metrics != nil {
		s.metrics.IncrementGreedyIncomplete()
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

// Compile-time assertion that Service implements domain.ChangeService.
var _ domain.ChangeService = (*Service)(nil)
