package arena

// Snapshot contains the round state in primitive types for determinism
// checks and the headless sim report.
type Snapshot struct {
	Tick    uint64
	Variant string
	State   string
	Paused  bool
	Score   int
	Level   int

	PlayerX, PlayerY int
	PlayerVY         int
	Health, Lives    int
	Airborne         bool
	CameraX, CameraY int
	Enemies          int
	Projectiles      int
	Collectibles     int

	// Each entity is 8 ints: Kind, X, Y, W, H, VX, VY, ShootDelay (or Side
	// for projectiles).
	EntityData []int
}

// Snapshot returns the current round as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pl := g.world.Player()
	cx, cy := g.camera.Offset()

	data := make([]int, 0, len(g.world.entities)*8)
	for i := range g.world.entities {
		e := &g.world.entities[i]
		if e.removed {
			continue
		}
		var extra int
		switch e.Kind {
		case KindEnemy:
			extra = e.Enemy.ShootDelay
		case KindProjectile:
			extra = int(e.Projectile.Side)
		}
		data = append(data, int(e.Kind), e.Box.X, e.Box.Y, e.Box.W, e.Box.H, e.VX, e.VY, extra)
	}

	return Snapshot{
		Tick:         g.round.Tick,
		Variant:      string(g.variant),
		State:        g.round.State.String(),
		Paused:       g.round.Paused,
		Score:        g.round.Score,
		Level:        g.round.Level,
		PlayerX:      pl.Box.X,
		PlayerY:      pl.Box.Y,
		PlayerVY:     pl.VY,
		Health:       pl.Player.Health,
		Lives:        pl.Player.Lives,
		Airborne:     pl.Player.Airborne,
		CameraX:      cx,
		CameraY:      cy,
		Enemies:      g.world.Count(KindEnemy),
		Projectiles:  g.world.Count(KindProjectile),
		Collectibles: g.world.Count(KindCollectible),
		EntityData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, s := range []string{snap.Variant, snap.State} {
		for _, r := range s {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Airborne)

	for _, v := range []int{
		snap.Score, snap.Level,
		snap.PlayerX, snap.PlayerY, snap.PlayerVY,
		snap.Health, snap.Lives,
		snap.CameraX, snap.CameraY,
		snap.Enemies, snap.Projectiles, snap.Collectibles,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
