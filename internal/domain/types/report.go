package types

import (
	"encoding/json"
	"time"
)

// ReportKind names the operation a report was produced by.
type ReportKind string

const (
	ReportChange      ReportKind = "change"
	ReportCanonical   ReportKind = "canonical"
	ReportEstimate    ReportKind = "estimate"
	ReportExperiment  ReportKind = "experiment"
	ReportConvergence ReportKind = "convergence"
)

// Report is a persisted result. Payload holds the JSON form of the result
// struct matching Kind; Fingerprint is computed over Payload.
type Report struct {
	ID          ReportID        `json:"id"`
	Kind        ReportKind      `json:"kind"`
	CreatedAt   time.Time       `json:"created_at"`
	Fingerprint Fingerprint     `json:"fingerprint"`
	Payload     json.RawMessage `json:"payload"`
}

// ReportSummary is the listing form of a report.
type ReportSummary struct {
	ID        ReportID   `json:"id"`
	Kind      ReportKind `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
}
