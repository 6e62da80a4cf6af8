package arena

import (
	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
)

// World owns every entity of a round. The player is held apart from the
// entity slice because there is always exactly one.
type World struct {
	cfg     *config.ArenaConfig
	variant Variant
	rng     Rand

	player   Entity
	entities []Entity
	pending  []Entity
	nextID   EntityID

	held   core.KeySet
	events []core.Event
}

// NewWorld creates a world with the player at its spawn point.
func NewWorld(cfg *config.ArenaConfig, variant Variant, rng Rand) *World {
	w := &World{
		cfg:      cfg,
		variant:  variant,
		rng:      rng,
		entities: make([]Entity, 0, 64),
	}
	w.player = Entity{ID: w.allocID(), Kind: KindPlayer}
	w.resetPlayer()
	return w
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// resetPlayer puts the player back at spawn with full health and lives.
// The player keeps its ID.
func (w *World) resetPlayer() {
	p := &w.cfg.Player
	w.player.Box = core.NewRect(p.SpawnX, p.SpawnY, p.Width, p.Height)
	w.player.VX, w.player.VY = 0, 0
	w.player.Player = PlayerState{Health: p.MaxHealth, Lives: p.Lives}
}

// Player returns the player entity.
func (w *World) Player() *Entity {
	return &w.player
}

// Add inserts an entity and returns its assigned ID.
func (w *World) Add(e Entity) EntityID {
	e.ID = w.allocID()
	e.removed = false
	w.entities = append(w.entities, e)
	return e.ID
}

// queue defers an insertion until the current advance pass is over, so the
// entity slice is never grown while entities are being iterated by pointer.
func (w *World) queue(e Entity) {
	e.ID = w.allocID()
	w.pending = append(w.pending, e)
}

func (w *World) flush() {
	w.entities = append(w.entities, w.pending...)
	w.pending = w.pending[:0]
}

// Remove marks the entity with the given ID as removed. Removing an unknown
// or already removed ID is a no-op. The player cannot be removed.
func (w *World) Remove(id EntityID) {
	for i := range w.entities {
		if w.entities[i].ID == id {
			w.entities[i].removed = true
			return
		}
	}
}

// Get returns the live entity with the given ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	if id == w.player.ID {
		return &w.player, true
	}
	for i := range w.entities {
		if w.entities[i].ID == id && !w.entities[i].removed {
			return &w.entities[i], true
		}
	}
	return nil, false
}

// Count returns the number of live entities of a kind.
func (w *World) Count(kind Kind) int {
	if kind == KindPlayer {
		return 1
	}
	n := 0
	for i := range w.entities {
		if w.entities[i].Kind == kind && !w.entities[i].removed {
			n++
		}
	}
	return n
}

// Entities returns a copy of the live non-player entities in insertion order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops every non-player entity.
func (w *World) Clear() {
	w.entities = w.entities[:0]
	w.pending = w.pending[:0]
}

// advance runs the per-kind advance function on the player and every live
// entity, then admits entities queued during the pass.
func (w *World) advance(held core.KeySet) {
	w.held = held
	advancers[KindPlayer](w, &w.player)
	for i := range w.entities {
		e := &w.entities[i]
		if e.removed {
			continue
		}
		advancers[e.Kind](w, e)
	}
	w.flush()
}

// compact drops removed entities. Called once at the end of a tick.
func (w *World) compact() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if !e.removed {
			live = append(live, e)
		}
	}
	clear(w.entities[len(live):])
	w.entities = live
}

// newProjectile builds a projectile centred on the muzzle point. The side
// fixes the direction of travel for the projectile's lifetime.
func (w *World) newProjectile(side Side, muzzleX, muzzleY int) Entity {
	p := &w.cfg.Projectile
	vy := p.Speed
	if side == SidePlayer {
		vy = -vy
	}
	return Entity{
		Kind:       KindProjectile,
		Box:        core.RectCentered(muzzleX, muzzleY, p.Width, p.Height),
		VY:         vy,
		Projectile: ProjectileState{Side: side},
	}
}

// shoot fires a player projectile from the turret if the cooldown allows.
func (w *World) shoot() bool {
	pl := &w.player
	if pl.Player.Cooldown > 0 {
		return false
	}
	w.Add(w.newProjectile(SidePlayer, pl.Box.CenterX(), pl.Box.Y))
	pl.Player.Cooldown = w.cfg.Player.ShootCooldown
	return true
}

func (w *World) variantCfg() *config.VariantConfig {
	return w.variant.config(w.cfg)
}

func (w *World) emit(kind core.EventKind, value int) {
	w.events = append(w.events, core.Event{Kind: kind, Value: value})
}

// drainEvents returns the events emitted since the last drain.
func (w *World) drainEvents() []core.Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}
