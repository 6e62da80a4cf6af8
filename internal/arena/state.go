package arena

import "github.com/vovakirdan/tank-arena/internal/core"

// RoundState is the top-level state of a round.
type RoundState uint8

const (
	StateRunning RoundState = iota
	StateGameOver
)

// String returns the state name used in logs and the HUD.
func (s RoundState) String() string {
	if s == StateGameOver {
		return "gameover"
	}
	return "running"
}

// Round holds the scoring and state-machine part of a round. Player health
// and lives live on the player entity.
type Round struct {
	State  RoundState
	Paused bool
	Score  int
	Level  int
	Tick   uint64
}

func newRound() Round {
	return Round{State: StateRunning, Level: 1}
}

// damage applies n points of damage to the player. Running out of health
// costs a life and refills health; running out of lives ends the round.
// It reports whether the round just ended.
func (g *Game) damage(n int) bool {
	if n <= 0 {
		return false
	}
	pl := &g.world.Player().Player
	pl.Health -= n
	g.world.emit(core.EventPlayerHit, n)

	if pl.Health <= 0 {
		pl.Lives--
		pl.Health = g.cfg.Player.MaxHealth
		g.world.emit(core.EventLifeLost, pl.Lives)
	}
	if pl.Lives <= 0 {
		pl.Lives = 0
		g.round.State = StateGameOver
		g.world.emit(core.EventGameOver, g.round.Score)
		return true
	}
	return false
}

// heal restores health up to the configured maximum.
func (g *Game) heal(n int) {
	pl := &g.world.Player().Player
	pl.Health = min(pl.Health+n, g.cfg.Player.MaxHealth)
}

// checkLevel raises the level by at most one per tick once the score
// reaches the threshold for the current level.
func (g *Game) checkLevel() {
	if g.round.Score >= g.cfg.Rules.LevelThreshold*g.round.Level {
		g.round.Level++
		g.world.emit(core.EventLevelUp, g.round.Level)
	}
}

// restart begins a new round in place. The random source carries on so a
// seeded session stays reproducible across restarts.
func (g *Game) restart() {
	g.world.Clear()
	g.world.resetPlayer()
	g.round = newRound()
	g.camera.Follow(g.world.Player().Box)
	g.world.emit(core.EventRestart, 0)
}
