package arena

import (
	"testing"

	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
)

// noSpawn fails every 1-in-N trial and draws the maximum of every range.
type noSpawn struct{}

func (noSpawn) Intn(n int) int { return n - 1 }

// alwaysSpawn passes every 1-in-N trial and draws the minimum of every range.
type alwaysSpawn struct{}

func (alwaysSpawn) Intn(int) int { return 0 }

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g, err := New(v, config.DefaultArenaConfig())
	if err != nil {
		t.Fatalf("New(%s): %v", v, err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.SetRand(noSpawn{})
	return g
}

// addEnemy places an enemy moving along its variant's axis at speed.
func addEnemy(w *World, x, y, speed int) EntityID {
	e := Entity{
		Kind: KindEnemy,
		Box:  core.NewRect(x, y, w.cfg.Enemy.Width, w.cfg.Enemy.Height),
	}
	if w.variant.descends() {
		e.VY = speed
	} else {
		e.VX = -speed
	}
	return w.Add(e)
}

// enemySpeed is the speed of an enemy along its axis of travel.
func enemySpeed(e Entity) int {
	return max(-e.VX, e.VY)
}

func addShot(w *World, side Side, cx, cy int) EntityID {
	return w.Add(w.newProjectile(side, cx, cy))
}

func addCollectible(w *World, x, y int) EntityID {
	size := w.cfg.Collectible.Size
	return w.Add(Entity{Kind: KindCollectible, Box: core.NewRect(x, y, size, size)})
}

func input(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Hold(k)
	}
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Push(a)
	return in
}

func (w *World) drainEventsHave(kind core.EventKind) bool {
	return core.StepResult{Events: w.drainEvents()}.Has(kind)
}
