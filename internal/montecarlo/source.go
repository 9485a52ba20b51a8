package montecarlo

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"numlab/internal/digest"
	"numlab/internal/domain"
)

// NewSource returns a PCG source seeded from label. An empty label is
// replaced with a fresh random one, which is returned so the run can be
// replayed.
func NewSource(label domain.SeedLabel) (rand.Source, domain.SeedLabel) {
	if label == "" {
		label = domain.SeedLabel(uuid.NewString())
	}
	hi, lo := digest.Seed(label.String())
	return rand.NewPCG(hi, lo), label
}
