package arena

import (
	"fmt"

	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/registry"
)

// activeConfig is the configuration registry factories build games with.
// The CLI replaces it through Configure before creating a game.
var activeConfig = config.DefaultArenaConfig()

// Configure validates cfg and makes it the configuration used by games
// created through the registry.
func Configure(cfg config.ArenaConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	activeConfig = cfg
	return nil
}

func init() {
	for _, v := range Variants {
		registry.Register(string(v), factory(v))
	}
}

func factory(v Variant) registry.Factory {
	return func() registry.Game {
		g, err := New(v, activeConfig)
		if err != nil {
			// activeConfig only ever holds validated configs.
			panic(err)
		}
		return g
	}
}

// Game runs one arena variant. It implements registry.Game.
type Game struct {
	variant Variant
	cfg     config.ArenaConfig
	runtime core.RuntimeConfig

	world   *World
	camera  Camera
	spawner Spawner
	round   Round
}

// New creates a game for the variant and starts a round with the default
// runtime config. Call Reset to pick the seed and terminal size.
func New(v Variant, cfg config.ArenaConfig) (*Game, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("arena: unknown variant %q", v)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	g := &Game{variant: v, cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title()
}

// Variant returns the enemy behaviour of this game.
func (g *Game) Variant() Variant {
	return g.variant
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ArenaConfig {
	return g.cfg
}

// Reset starts a fresh round and reseeds the random source from the runtime
// config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(&g.cfg, g.variant, NewRand(runtime.Seed))
	g.camera = NewCamera(g.cfg.Screen.Width, g.cfg.Screen.Height, g.cfg.World.Width, g.cfg.World.Height)
	g.round = newRound()
	g.camera.Follow(g.world.Player().Box)
}

// SetRand replaces the random source of the current round.
func (g *Game) SetRand(r Rand) {
	g.world.rng = r
}

// World returns the entity registry of the current round.
func (g *Game) World() *World {
	return g.world
}

// Camera returns the current viewport.
func (g *Game) Camera() Camera {
	return g.camera
}

// Round returns the scoring and state-machine state.
func (g *Game) Round() Round {
	return g.round
}

// Step advances the round by one tick.
//
// Order: input actions, spawner, entity advance, collisions, leveling,
// compaction, camera. While the round is over only a restart is accepted;
// while paused only the pause toggle is.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.State == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return g.result()
	}

	if in.Count(core.ActionPause)%2 == 1 {
		g.round.Paused = !g.round.Paused
	}
	if g.round.Paused {
		return g.result()
	}

	g.round.Tick++

	for range in.Count(core.ActionShoot) {
		if g.world.shoot() {
			g.world.emit(core.EventShot, 0)
		}
	}

	g.spawner.Tick(g.world, g.round.Level)
	g.world.advance(in.Held)
	g.collide()
	if g.round.State == StateRunning {
		g.checkLevel()
	}
	g.world.compact()
	g.camera.Follow(g.world.Player().Box)

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.world.drainEvents()}
}

// State returns the HUD-level state of the round.
func (g *Game) State() core.GameState {
	pl := g.world.Player().Player
	return core.GameState{
		Score:    g.round.Score,
		Level:    g.round.Level,
		Health:   pl.Health,
		Lives:    pl.Lives,
		GameOver: g.round.State == StateGameOver,
		Paused:   g.round.Paused,
	}
}
