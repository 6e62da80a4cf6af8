package arena

import (
	"github.com/vovakirdan/tank-arena/internal/core"
)

// Spawner creates enemies and collectibles. Each running tick it runs two
// independent 1-in-N trials, enemy first, then collectible.
type Spawner struct{}

// Tick runs the spawn trials for one frame at the given level.
func (Spawner) Tick(w *World, level int) {
	cfg := w.cfg
	if oneIn(w.rng, cfg.Spawn.EnemyChance) {
		w.Add(spawnEnemy(w, level))
	}
	if oneIn(w.rng, cfg.Spawn.CollectibleChance) {
		w.Add(spawnCollectible(w))
	}
}

// spawnEnemy draws an enemy from the variant's ranges. Speed grows with the
// level so that an enemy spawned at level L is at least base min + L*bonus.
func spawnEnemy(w *World, level int) Entity {
	v := w.variantCfg()
	x := between(w.rng, v.EnemyX)
	y := between(w.rng, v.EnemyY)
	speed := between(w.rng, v.EnemySpeed) + level*w.cfg.Spawn.LevelSpeedBonus

	e := Entity{
		Kind: KindEnemy,
		Box:  core.NewRect(x, y, w.cfg.Enemy.Width, w.cfg.Enemy.Height),
	}
	if w.variant.descends() {
		e.VY = speed
		e.Enemy.Shoots = true
		e.Enemy.ShootDelay = between(w.rng, v.FirstShot)
	} else {
		e.VX = -speed
	}
	return e
}

// spawnCollectible places a pickup in the near-ground band.
func spawnCollectible(w *World) Entity {
	size := w.cfg.Collectible.Size
	x := between(w.rng, rangeOf(0, w.cfg.World.Width-size))
	y := between(w.rng, w.variantCfg().CollectibleY)
	return Entity{
		Kind: KindCollectible,
		Box:  core.NewRect(x, y, size, size),
	}
}
