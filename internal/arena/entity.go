// Package arena implements the tank arena simulation: a player tank on a
// scrolling floor, enemy tanks spawned at random, projectiles, health
// pickups, a clamped follow camera and a Running/GameOver round loop.
//
// The package is pure simulation. It never touches the terminal, a window or
// an audio device; front ends feed it core.InputFrame values at a fixed tick
// rate and draw what Frame or Render hands back.
package arena

import (
	"github.com/vovakirdan/tank-arena/internal/core"
)

// Kind tags which variant an Entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindCollectible
	kindCount
)

// String returns the kind name used in logs and snapshots.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Side is the owner of a projectile.
type Side uint8

const (
	SidePlayer Side = iota // fired upward by the player
	SideEnemy              // fired downward by a descending enemy
)

// EntityID is assigned by the World and is stable for the entity's lifetime.
type EntityID uint32

// Entity is a tagged union over the four entity kinds. Common fields are the
// bounding box and velocity; the per-kind state lives in the struct matching
// Kind and is zero for every other kind.
type Entity struct {
	ID   EntityID
	Kind Kind
	Box  core.Rect
	VX   int
	VY   int

	Player     PlayerState
	Enemy      EnemyState
	Projectile ProjectileState

	removed bool
}

// PlayerState is the player-only part of an Entity.
type PlayerState struct {
	Health   int
	Lives    int
	Airborne bool
	Cooldown int // Ticks until the next shot is allowed
}

// EnemyState is the enemy-only part of an Entity.
type EnemyState struct {
	Shoots     bool
	ShootDelay int // Ticks until the next shot, when Shoots is set
}

// ProjectileState is the projectile-only part of an Entity.
type ProjectileState struct {
	Side Side
}

// outside reports whether the box has fully left the world in the
// direction of travel given by the velocity.
func (e *Entity) outside(worldW, worldH int) bool {
	switch {
	case e.VX < 0 && e.Box.Right() < 0, e.VX > 0 && e.Box.X > worldW:
		return true
	case e.VY < 0 && e.Box.Bottom() < 0, e.VY > 0 && e.Box.Y > worldH:
		return true
	}
	return false
}

// advanceFunc moves one entity by one tick. It may mark the entity removed
// and may queue new entities on the world.
type advanceFunc func(w *World, e *Entity)

// advancers is the per-kind dispatch table used by World.advance.
var advancers = [kindCount]advanceFunc{
	KindPlayer:      advancePlayer,
	KindEnemy:       advanceEnemy,
	KindProjectile:  advanceProjectile,
	KindCollectible: func(*World, *Entity) {},
}

// advancePlayer applies the held keys, integrates velocity, then gravity,
// and keeps the tank on the floor and inside the world horizontally.
func advancePlayer(w *World, e *Entity) {
	cfg := &w.cfg.Player
	held := w.held

	e.VX = 0
	if held.Has(core.KeyLeft) {
		e.VX -= cfg.Speed
	}
	if held.Has(core.KeyRight) {
		e.VX += cfg.Speed
	}
	if held.Has(core.KeyUp) && w.variant.climbs() {
		e.Box.Y -= cfg.Speed
	}
	if held.Has(core.KeyJump) && !e.Player.Airborne {
		e.VY = cfg.JumpImpulse
		e.Player.Airborne = true
	}

	e.Box = e.Box.Translate(e.VX, e.VY)
	e.VY += w.cfg.World.Gravity

	if floorTop := w.cfg.World.FloorY - e.Box.H; e.Box.Y >= floorTop {
		e.Box.Y = floorTop
		e.VY = 0
		e.Player.Airborne = false
	}
	e.Box.X = core.Clamp(e.Box.X, 0, w.cfg.World.Width-e.Box.W)
	e.Box.Y = max(e.Box.Y, 0)

	if e.Player.Cooldown > 0 {
		e.Player.Cooldown--
	}
}

// advanceEnemy moves an enemy by its velocity, drops it once it has left
// the world, and runs the shoot countdown for enemies that fire.
func advanceEnemy(w *World, e *Entity) {
	e.Box = e.Box.Translate(e.VX, e.VY)
	if e.outside(w.cfg.World.Width, w.cfg.World.Height) {
		e.removed = true
		return
	}

	if !e.Enemy.Shoots {
		return
	}
	e.Enemy.ShootDelay--
	if e.Enemy.ShootDelay <= 0 {
		w.queue(w.newProjectile(SideEnemy, e.Box.CenterX(), e.Box.Bottom()))
		e.Enemy.ShootDelay = between(w.rng, w.variantCfg().Refire)
		w.emit(core.EventEnemyShot, 0)
	}
}

// advanceProjectile moves a projectile by its velocity and removes it once
// its box has fully left the world in its direction of travel.
func advanceProjectile(w *World, e *Entity) {
	e.Box = e.Box.Translate(e.VX, e.VY)
	if e.outside(w.cfg.World.Width, w.cfg.World.Height) {
		e.removed = true
	}
}
