package labapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numlab/internal/coins"
	"numlab/internal/domain"
	"numlab/internal/montecarlo"
	"numlab/internal/services/change"
	"numlab/internal/services/integration"
)

// maxBodyBytes caps request bodies; the largest legitimate body is a long
// denomination list.
const maxBodyBytes = 1 << 20

// errBadRequest marks decoding failures so they map to 400.
var errBadRequest = errors.New("bad request")

// Handler wires lab endpoints to the services.
type Handler struct {
	change      domain.ChangeService
	integration domain.IntegrationService
	denoms      domain.Denominations
	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	timeout     time.Duration
}

// New constructs a Handler. denoms is used when a change request names none.
func New(
	changeSvc domain.ChangeService,
	integrationSvc domain.IntegrationService,
	denoms domain.Denominations,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	timeout time.Duration,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		change:      changeSvc,
		integration: integrationSvc,
		denoms:      denoms,
		logger:      logger,
		gatherer:    gatherer,
		timeout:     timeout,
	}
}

// Routes returns the router serving every endpoint.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if h.timeout > 0 {
		r.Use(middleware.Timeout(h.timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/change", h.HandleChange)
		v1.Post("/integrate", h.HandleIntegrate)
	})
	return r
}

// HandleChange handles POST /v1/change requests.
func (h *Handler) HandleChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ChangeRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	strategy, err := req.strategy()
	if err != nil {
		h.fail(w, r, errors.Join(errBadRequest, err))
		return
	}
	denoms := req.Denominations
	if len(denoms) == 0 {
		denoms = h.denoms
	}

	var out domain.ChangeComparison
	switch strategy {
	case domain.StrategyGreedy:
		out.Greedy, err = h.change.Greedy(ctx, req.Amount, denoms)
	case domain.StrategyMin:
		out.Optimal, err = h.change.MinCoins(ctx, req.Amount, denoms)
		out.Reachable = req.Amount == 0 || len(out.Optimal) > 0
	default:
		out, err = h.change.Compare(ctx, req.Amount, denoms)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out.Amount = req.Amount
	out.Denominations = denoms

	h.logger.InfoContext(ctx, "change served",
		"request_id", middleware.GetReqID(ctx),
		"amount", req.Amount,
		"strategy", strategy,
	)
	writeJSON(w, http.StatusOK, out)
}

// HandleIntegrate handles POST /v1/integrate requests.
func (h *Handler) HandleIntegrate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req IntegrateRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.integration.Experiment(ctx, req.toDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "integration served",
		"request_id", middleware.GetReqID(ctx),
		"function", out.Function,
		"samples", out.Samples,
		"trials", out.Trials,
		"seed", out.Seed,
	)
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.GetReqID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, coins.ErrNegativeAmount),
		errors.Is(err, coins.ErrInvalidDenomination),
		errors.Is(err, montecarlo.ErrNilFunc),
		errors.Is(err, montecarlo.ErrInvalidBounds),
		errors.Is(err, montecarlo.ErrInvalidSamples),
		errors.Is(err, montecarlo.ErrInvalidTrials),
		errors.Is(err, montecarlo.ErrUnboundedIntegrand),
		errors.Is(err, montecarlo.ErrUnknownFunction):
		return http.StatusBadRequest
	case errors.Is(err, change.ErrAmountTooLarge),
		errors.Is(err, integration.ErrSampleBudgetExceeded):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, out any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
