package main

import (
	"math/rand"

	"github.com/vovakirdan/tank-arena/internal/core"
)

// script produces pseudo-random input that drives around, jumps and fires
// in bursts. Its own generator keeps it independent of the arena's.
type script struct {
	rng   *rand.Rand
	held  core.KeySet
	until int
	tick  int
}

func newScript(seed int64) *script {
	return &script{rng: rand.New(rand.NewSource(seed ^ 0x5eed))} //#nosec G404 -- input script, not security
}

func (s *script) next(restart bool) core.InputFrame {
	s.tick++
	if s.tick >= s.until {
		s.held = 0
		switch s.rng.Intn(4) {
		case 0:
			s.held = s.held.With(core.KeyLeft)
		case 1, 2:
			s.held = s.held.With(core.KeyRight)
		}
		if s.rng.Intn(5) == 0 {
			s.held = s.held.With(core.KeyJump)
		}
		if s.rng.Intn(3) == 0 {
			s.held = s.held.With(core.KeyUp)
		}
		s.until = s.tick + 10 + s.rng.Intn(50)
	}

	in := core.InputFrame{Held: s.held}
	if s.rng.Intn(8) == 0 {
		in.Push(core.ActionShoot)
	}
	if restart {
		in.Push(core.ActionRestart)
	}
	return in
}
