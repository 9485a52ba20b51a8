// Package commands defines the numlab CLI and wires dependencies for subcommands.
//
// Commands
//
//   - change        Decompose an amount with greedy, minimum-count or both
//   - canonical     Check whether greedy is optimal for a denomination set
//   - integrate     Estimate an integral by hit-or-miss Monte Carlo
//   - convergence   Show how the estimate improves with samples and trials
//   - reports       List or show saved reports
//
// # Implementation
//
// The root command loads the TOML config, applies flag overrides and builds
// the dependency graph (logger, metrics, report store, services, optional
// remote lab client) before any subcommand runs. Logs go to stderr; results
// go to the command's output stream.
package commands
