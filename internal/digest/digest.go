package digest

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// seedDomain separates seed derivation from fingerprinting so a label and a
// payload with equal bytes never share a digest.
const seedDomain = "numlab/seed/v1:"

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// Seed maps label to two 64-bit words suitable for rand.NewPCG.
func Seed(label string) (uint64, uint64) {
	sum := blake2b.Sum256([]byte(seedDomain + label))
	return binary.LittleEndian.Uint64(sum[0:8]), binary.LittleEndian.Uint64(sum[8:16])
}
