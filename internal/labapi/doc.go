// Package labapi exposes the change and integration services over HTTP.
//
// Routes
//
//   - POST /v1/change      decompose an amount (greedy, min or compare)
//   - POST /v1/integrate   run a Monte Carlo experiment
//   - GET  /healthz        liveness
//   - GET  /metrics        Prometheus exposition
//
// Requests and responses are JSON. Input that the services reject is
// answered with 400 and {"error": "..."}; anything else is a 500.
package labapi
