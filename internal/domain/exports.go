package domain

import (
	interfaces "numlab/internal/domain/interfaces"
	types "numlab/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ReportID           = types.ReportID
	Fingerprint        = types.Fingerprint
	SeedLabel          = types.SeedLabel
	Denominations      = types.Denominations
	Decomposition      = types.Decomposition
	Change             = types.Change
	ChangeComparison   = types.ChangeComparison
	CanonicalCheck     = types.CanonicalCheck
	Interval           = types.Interval
	Reference          = types.Reference
	IntegrationRequest = types.IntegrationRequest
	Estimate           = types.Estimate
	Experiment         = types.Experiment
	SweepPoint         = types.SweepPoint
	Convergence        = types.Convergence
	ReportKind         = types.ReportKind
	Report             = types.Report
	ReportSummary      = types.ReportSummary
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ChangeService      = interfaces.ChangeService
	IntegrationService = interfaces.IntegrationService
	ReportStore        = interfaces.ReportStore
	LabClient          = interfaces.LabClient
	ChangeStrategy     = interfaces.ChangeStrategy
)

const (
	ReportChange      = types.ReportChange
	ReportCanonical   = types.ReportCanonical
	ReportEstimate    = types.ReportEstimate
	ReportExperiment  = types.ReportExperiment
	ReportConvergence = types.ReportConvergence

	StrategyGreedy  = interfaces.StrategyGreedy
	StrategyMin     = interfaces.StrategyMin
	StrategyCompare = interfaces.StrategyCompare
)
