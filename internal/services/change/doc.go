// Package change serves coin decompositions to the CLI and the lab daemon.
//
// It wraps internal/coins with an amount limit (the minimum-count table
// grows linearly with the amount), structured logging, metrics and optional
// report persistence via the domain.ReportStore.
package change
