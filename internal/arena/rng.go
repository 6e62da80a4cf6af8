package arena

import (
	"math/rand"

	"github.com/vovakirdan/tank-arena/internal/config"
)

// Rand is the random source a round draws from. *rand.Rand satisfies it;
// tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from the inclusive range.
func between(rng Rand, r config.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Span())
}

// oneIn reports success of a 1-in-n trial.
func oneIn(rng Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return rng.Intn(n) == 0
}

func rangeOf(lo, hi int) config.Range {
	return config.Range{Min: lo, Max: hi}
}
