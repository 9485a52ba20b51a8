// Package integration runs Monte Carlo integrations and sets them against
// deterministic references.
//
// Every run gets its own Estimator seeded from the request's seed label (a
// fresh label is generated and returned when none is given), so results are
// reproducible and independent runs never share a random stream.
package integration
