// Package digest derives short fingerprints and PRNG seeds with BLAKE2b.
//
// Contents
//
//   - Short payload fingerprints for reports (Fingerprint)
//   - Deterministic 128-bit seeds from human-readable labels (Seed)
package digest
