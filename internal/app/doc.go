// Package app wires application dependencies for numlab and labd.
//
// It loads the TOML Config (defaults, then <home>/numlab.toml, then flag
// overrides applied by the caller), builds the slog logger and Prometheus
// registry, and constructs the report store and high-level services,
// exposing them via the Wire struct for commands and handlers to use.
package app
