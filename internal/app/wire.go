package app

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"numlab/internal/domain"
	"numlab/internal/metrics"
	changesvc "numlab/internal/services/change"
	integrationsvc "numlab/internal/services/integration"
	"numlab/internal/store"
)

// Wire bundles all stores, services, and observability for the CLI and labd.
type Wire struct {
	Config      Config
	Logger      *slog.Logger
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	Reports     domain.ReportStore
	Change      domain.ChangeService
	Integration domain.IntegrationService
}

// NewWire constructs the dependency graph from cfg. Logs are written to
// logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := NewLogger(logOut, cfg.Log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// The store always exists so reports can be listed; services only write
	// to it when saving is enabled.
	reports := store.NewReportFileStore(cfg.ReportsDir())

	changeOpts := []changesvc.Option{
		changesvc.WithLogger(logger.With("service", "change")),
		changesvc.WithMetrics(m),
		changesvc.WithMaxAmount(cfg.Coins.MaxAmount),
	}
	integrationOpts := []integrationsvc.Option{
		integrationsvc.WithLogger(logger.With("service", "integration")),
		integrationsvc.WithMetrics(m),
		integrationsvc.WithGridSize(cfg.Integration.GridSize),
		integrationsvc.WithMaxSamples(cfg.Integration.MaxSamples),
	}
	if cfg.Reports.Save {
		changeOpts = append(changeOpts, changesvc.WithReports(reports))
		integrationOpts = append(integrationOpts, integrationsvc.WithReports(reports))
	}

	return &Wire{
		Config:      cfg,
		Logger:      logger,
		Registry:    reg,
		Metrics:     m,
		Reports:     reports,
		Change:      changesvc.New(changeOpts...),
		Integration: integrationsvc.New(integrationOpts...),
	}, nil
}
