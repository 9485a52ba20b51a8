// Package domain defines core data models and interfaces shared across numlab.
// It contains plain types (results, requests, reports) and contracts
// (interfaces) only; the algorithms live in internal/coins and
// internal/montecarlo.
package domain
