// Package window runs an arena game in a desktop window. The simulation
// runs at Ebiten's tick rate; the round is drawn in world pixels.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tank-arena/internal/arena"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/platform/session"
)

var (
	background = color.RGBA{0x10, 0x12, 0x18, 0xff}
	ground     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	overlay    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:         {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:       {0x30, 0xb0, 0x40, 0xff},
	core.ColorYellow:      {0xe0, 0xd0, 0x40, 0xff},
	core.ColorBlue:        {0x40, 0x70, 0xe0, 0xff},
	core.ColorWhite:       {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:   {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen: {0x60, 0xff, 0x70, 0xff},
	core.ColorGray:        {0x90, 0x90, 0x90, 0xff},
}

// Held movement keys; either binding counts.
var heldKeys = []struct {
	key  core.Key
	keys []ebiten.Key
}{
	{core.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.KeyJump, []ebiten.Key{ebiten.KeySpace}},
}

// Action keys fire once per press.
var actionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionShoot, []ebiten.Key{ebiten.KeyS}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
}

// Window adapts an arena game to ebiten.Game.
type Window struct {
	game  *arena.Game
	rec   *session.Recorder
	frame core.InputFrame
}

// New creates a window front end for game. rec may be nil.
func New(game *arena.Game, rec *session.Recorder) *Window {
	return &Window{game: game, rec: rec}
}

// Update polls the keyboard and advances the round by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.frame.Clear()
	for _, b := range heldKeys {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				w.frame.Hold(b.key)
				break
			}
		}
	}
	for _, b := range actionKeys {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.frame.Push(b.action)
			}
		}
	}

	result := w.game.Step(w.frame)
	if w.rec != nil {
		w.rec.Observe(result)
	}
	return nil
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.game.Frame()
	screen.Fill(background)

	vector.StrokeLine(screen, 0, float32(f.FloorY), float32(f.ScreenW), float32(f.FloorY), 2, ground, false)

	for _, s := range f.Sprites {
		v := s.View
		vector.FillRect(screen, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), colorOf(s.Color), false)
	}

	for i, line := range f.HUD.Lines() {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}

	switch {
	case f.Message != "":
		drawBanner(screen, f.ScreenW, f.ScreenH, f.Message)
	case f.HUD.Paused:
		drawBanner(screen, f.ScreenW, f.ScreenH, "PAUSED - press P to resume")
	}
}

// Layout keeps the logical screen at the configured size; Ebiten scales it
// to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

// Run opens a window and blocks until it is closed or Q is pressed.
func Run(game *arena.Game, runtime core.RuntimeConfig, rec *session.Recorder) error {
	cfg := game.Config()
	game.Reset(runtime)

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	return ebiten.RunGame(New(game, rec))
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// drawBanner shades a strip across the middle of the screen and prints msg
// centred in it. The debug font is 6x16 pixels per glyph.
func drawBanner(screen *ebiten.Image, width, height int, msg string) {
	const glyphW, bannerH = 6, 48
	top := height/2 - bannerH/2
	vector.FillRect(screen, 0, float32(top), float32(width), bannerH, overlay, false)
	ebitenutil.DebugPrintAt(screen, msg, (width-len(msg)*glyphW)/2, top+bannerH/2-8)
}
