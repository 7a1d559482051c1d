package match

import (
	"math/rand/v2"

	"github.com/grazingtrail/backend/internal/domain"
)

// Selector picks one candidate uniformly at random from a filtered list.
// The zero value is not usable; construct with NewSelector.
//
// Randomness here is user-facing variety, not security; math/rand/v2 is the
// right tool. Tests pass a seeded source to make selection reproducible.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a Selector drawing from src.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NewDefaultSelector returns a Selector backed by a PCG source seeded from
// the process-wide generator. Use this in production wiring.
func NewDefaultSelector() *Selector {
	return NewSelector(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick returns one element of cands chosen uniformly at random.
//
// Calling Pick with an empty slice is a contract violation and panics.
// Callers must check for the zero-match case first (Filter's empty output)
// and branch to the zero-result path instead of selecting.
func (s *Selector) Pick(cands []domain.Candidate) domain.Candidate {
	return cands[s.rng.IntN(len(cands))]
}
