package arena

import (
	"fmt"

	"github.com/vovakirdan/tank-arena/internal/core"
)

// GameOverMessage is shown while the round is over.
const GameOverMessage = "Game Over! Press R to Restart"

// Glyphs used when rasterising into a terminal screen.
const (
	PlayerGlyph      = '█'
	EnemyGlyph       = '▓'
	ShotGlyph        = '|'
	CollectibleGlyph = '+'
	GroundGlyph      = '═'
)

// Sprite is one entity as the renderer sees it.
type Sprite struct {
	ID    EntityID
	Kind  Kind
	Side  Side // Projectiles only
	World core.Rect
	View  core.Rect // World box translated by the camera offset
	Color core.Color
}

// HUD holds the numeric overlay values.
type HUD struct {
	Health int
	Lives  int
	Score  int
	Level  int
	State  RoundState
	Paused bool
}

// Lines returns the overlay text, one value per line.
func (h HUD) Lines() []string {
	return []string{
		fmt.Sprintf("Health: %d", h.Health),
		fmt.Sprintf("Lives: %d", h.Lives),
		fmt.Sprintf("Score: %d", h.Score),
		fmt.Sprintf("Level: %d", h.Level),
	}
}

// RenderFrame is everything a front end needs to draw one tick.
type RenderFrame struct {
	ScreenW, ScreenH int
	WorldW, WorldH   int
	OffsetX, OffsetY int
	FloorY           int // Screen coordinate of the ground line
	Sprites          []Sprite
	HUD              HUD
	Message          string // Non-empty while the round is over
}

// Frame builds the render instructions for the current tick. Sprites are
// ordered collectibles, enemies, projectiles, then the player on top.
func (g *Game) Frame() RenderFrame {
	ox, oy := g.camera.Offset()
	f := RenderFrame{
		ScreenW: g.cfg.Screen.Width,
		ScreenH: g.cfg.Screen.Height,
		WorldW:  g.cfg.World.Width,
		WorldH:  g.cfg.World.Height,
		OffsetX: ox,
		OffsetY: oy,
		FloorY:  g.cfg.World.FloorY + oy,
		Sprites: make([]Sprite, 0, len(g.world.entities)+1),
	}

	for _, kind := range []Kind{KindCollectible, KindEnemy, KindProjectile} {
		for i := range g.world.entities {
			e := &g.world.entities[i]
			if e.removed || e.Kind != kind {
				continue
			}
			f.Sprites = append(f.Sprites, g.sprite(e))
		}
	}
	f.Sprites = append(f.Sprites, g.sprite(g.world.Player()))

	st := g.State()
	f.HUD = HUD{
		Health: st.Health,
		Lives:  st.Lives,
		Score:  st.Score,
		Level:  st.Level,
		State:  g.round.State,
		Paused: g.round.Paused,
	}
	if g.round.State == StateGameOver {
		f.Message = GameOverMessage
	}
	return f
}

func (g *Game) sprite(e *Entity) Sprite {
	return Sprite{
		ID:    e.ID,
		Kind:  e.Kind,
		Side:  e.Projectile.Side,
		World: e.Box,
		View:  g.camera.Apply(e.Box),
		Color: spriteColor(e),
	}
}

func spriteColor(e *Entity) core.Color {
	switch e.Kind {
	case KindPlayer:
		return core.ColorGreen
	case KindEnemy:
		return core.ColorRed
	case KindProjectile:
		if e.Projectile.Side == SideEnemy {
			return core.ColorBrightRed
		}
		return core.ColorYellow
	case KindCollectible:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

func spriteGlyph(k Kind) rune {
	switch k {
	case KindPlayer:
		return PlayerGlyph
	case KindEnemy:
		return EnemyGlyph
	case KindProjectile:
		return ShotGlyph
	default:
		return CollectibleGlyph
	}
}

// hudRows is the number of terminal rows reserved above the play field.
const hudRows = 1

// Render rasterises the current frame into a terminal screen. The viewport
// is scaled down so that it fits the screen below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	f := g.Frame()

	cols, rows := dst.Width(), dst.Height()-hudRows
	if cols <= 0 || rows <= 0 {
		return
	}
	sx := max(core.CeilDiv(f.ScreenW, cols), 1)
	sy := max(core.CeilDiv(f.ScreenH, rows), 1)

	toCells := func(r core.Rect) core.Rect {
		x0 := core.FloorDiv(r.X, sx)
		y0 := core.FloorDiv(r.Y, sy)
		x1 := max(core.FloorDiv(r.Right()-1, sx)+1, x0+1)
		y1 := max(core.FloorDiv(r.Bottom()-1, sy)+1, y0+1)
		return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
	}

	floorRow := core.FloorDiv(f.FloorY, sy) + hudRows
	dst.DrawHLine(0, floorRow, min(core.CeilDiv(f.ScreenW, sx), cols), GroundGlyph, core.ColorGray)

	for _, s := range f.Sprites {
		dst.FillRect(toCells(s.View), spriteGlyph(s.Kind), s.Color)
	}

	hud := fmt.Sprintf(" Health: %d  Lives: %d  Score: %d  Level: %d ", f.HUD.Health, f.HUD.Lives, f.HUD.Score, f.HUD.Level)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)

	switch {
	case f.Message != "":
		drawMessage(dst, f.Message, fmt.Sprintf("Score: %d", f.HUD.Score))
	case f.HUD.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawMessage draws a boxed two-line message in the middle of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+2, subtitle)
}
