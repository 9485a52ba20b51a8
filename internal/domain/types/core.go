package types

// ReportID uniquely identifies a persisted report.
type ReportID string

// String returns the string form of the report identifier.
func (id ReportID) String() string { return string(id) }

// Fingerprint is a short digest of a report payload.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SeedLabel names the pseudo-random stream a run drew from. The same label
// always reproduces the same samples.
type SeedLabel string

// String returns the string form of the seed label.
func (l SeedLabel) String() string { return string(l) }
