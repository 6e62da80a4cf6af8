package arena

import "github.com/vovakirdan/tank-arena/internal/core"

// Camera is a screen-sized viewport into the world. Its offset is what gets
// added to world coordinates to obtain screen coordinates; it is always in
// [-(world - screen), 0] on each axis.
type Camera struct {
	screenW, screenH int
	worldW, worldH   int
	x, y             int
}

// NewCamera creates a camera at the world origin.
func NewCamera(screenW, screenH, worldW, worldH int) Camera {
	return Camera{screenW: screenW, screenH: screenH, worldW: worldW, worldH: worldH}
}

// Follow centres the viewport on the target, clamped to the world edges.
func (c *Camera) Follow(target core.Rect) {
	cx, cy := target.Center()
	c.x = core.Clamp(c.screenW/2-cx, -(c.worldW - c.screenW), 0)
	c.y = core.Clamp(c.screenH/2-cy, -(c.worldH - c.screenH), 0)
}

// Offset returns the current translation from world to screen coordinates.
func (c Camera) Offset() (int, int) {
	return c.x, c.y
}

// Apply translates a world box into screen coordinates.
func (c Camera) Apply(box core.Rect) core.Rect {
	return box.Translate(c.x, c.y)
}

// View returns the visible world region.
func (c Camera) View() core.Rect {
	return core.NewRect(-c.x, -c.y, c.screenW, c.screenH)
}
