package interfaces

import domaintypes "numlab/internal/domain/types"

// ReportStore persists results so runs can be inspected later.
type ReportStore interface {
	SaveReport(kind domaintypes.ReportKind, payload any) (domaintypes.Report, error)
	LoadReport(id domaintypes.ReportID) (domaintypes.Report, error)
	ListReports() ([]domaintypes.ReportSummary, error)
}
