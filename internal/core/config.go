package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the HUD-level state of a round, returned by Game.State().
type GameState struct {
	Score    int
	Level    int
	Health   int
	Lives    int
	GameOver bool
	Paused   bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventShot           EventKind = iota // player fired
	EventEnemyShot                       // an enemy fired
	EventEnemyDestroyed                  // an enemy was hit by a player projectile
	EventPlayerHit                       // the player took damage
	EventLifeLost                        // health ran out and a life was consumed
	EventPickup                          // a collectible healed the player
	EventLevelUp                         // the level increased
	EventGameOver                        // the last life was lost
	EventRestart                         // a new round started after game over
)

// String returns a stable name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventLifeLost:
		return "life_lost"
	case EventPickup:
		return "pickup"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single occurrence with an optional magnitude (damage dealt,
// points scored, new level).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
