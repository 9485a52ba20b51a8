// Package main runs labd, the HTTP front end to the coin changer and the
// Monte Carlo integrator.
//
// HTTP API
//
//	POST /v1/change
//	    {"amount": 113, "denominations": [50, 25, 10, 5, 2, 1], "strategy": "compare"}
//	    Strategy is greedy, min or compare (the default). Denominations fall
//	    back to the configured set. Returns a ChangeComparison.
//
//	POST /v1/integrate
//	    {"function": "square", "a": 0, "b": 2, "samples": 10000, "trials": 50, "seed": "run-1"}
//	    Returns an Experiment; trials defaults to 1.
//
//	GET /healthz
//	    Liveness probe.
//
//	GET /metrics
//	    Prometheus exposition of the lab counters plus Go and process
//	    collectors.
//
// Behaviour
//
//   - Validation failures answer 400, requests over the configured amount or
//     sample budget answer 413. Error bodies are {"error": "..."}.
//   - Each request carries a chi request ID and runs under the configured
//     write timeout.
//   - SIGINT or SIGTERM drains in-flight requests for up to
//     server.shutdown_timeout before exiting.
//   - The default listen address is :8080.
package main
