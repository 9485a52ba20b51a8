// Package labclient provides an HTTP implementation of the domain.LabClient
// interface used by numlab when a remote labd is configured.
//
// Supported operations:
//   - Decomposing an amount into coins with a chosen strategy.
//   - Running a Monte Carlo experiment.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, status text and the server's error message to aid diagnostics.
package labclient
