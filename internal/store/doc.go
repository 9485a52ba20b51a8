// Package store provides file-based persistence for numlab reports.
//
// ReportFileStore implements domain.ReportStore, serialising each report as
// an indented JSON file named after its ID. Writes go through a temp file
// and rename so a crash never leaves a half-written report. Every report
// carries a BLAKE2b fingerprint of its payload which is checked on load.
// All methods are concurrency-safe via internal locking.
package store
