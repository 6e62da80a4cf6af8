package arena

import "github.com/vovakirdan/tank-arena/internal/core"

// collide runs the collision passes in order. A pass that ends the round
// stops the remaining passes for this tick.
func (g *Game) collide() {
	w := g.world
	rules := &g.cfg.Rules
	player := w.Player()

	// Player shots against enemies. An enemy removed by an earlier shot is
	// skipped by later ones.
	for i := range w.entities {
		shot := &w.entities[i]
		if shot.removed || shot.Kind != KindProjectile || shot.Projectile.Side != SidePlayer {
			continue
		}
		hits := 0
		for j := range w.entities {
			enemy := &w.entities[j]
			if enemy.removed || enemy.Kind != KindEnemy {
				continue
			}
			if shot.Box.Intersects(enemy.Box) {
				enemy.removed = true
				hits++
				w.emit(core.EventEnemyDestroyed, rules.ScorePerEnemy)
			}
		}
		if hits > 0 {
			shot.removed = true
			g.round.Score += hits * rules.ScorePerEnemy
		}
	}

	// Enemy shots against the player: damage once for the tick.
	if g.sweep(KindProjectile, SideEnemy, player.Box, true) > 0 {
		if g.damage(rules.ProjectileDamage) {
			return
		}
	}

	// Body contact drains health every tick of overlap; enemies survive.
	if g.sweep(KindEnemy, 0, player.Box, false) > 0 {
		if g.damage(rules.ContactDamage) {
			return
		}
	}

	// Pickups: every overlapping collectible is consumed, heal applies once.
	if n := g.sweep(KindCollectible, 0, player.Box, true); n > 0 {
		g.heal(rules.HealAmount)
		w.emit(core.EventPickup, n)
	}
}

// sweep counts live entities of a kind overlapping box, optionally removing
// them. For projectiles only the given side is considered.
func (g *Game) sweep(kind Kind, side Side, box core.Rect, remove bool) int {
	n := 0
	for i := range g.world.entities {
		e := &g.world.entities[i]
		if e.removed || e.Kind != kind {
			continue
		}
		if kind == KindProjectile && e.Projectile.Side != side {
			continue
		}
		if !e.Box.Intersects(box) {
			continue
		}
		n++
		if remove {
			e.removed = true
		}
	}
	return n
}
