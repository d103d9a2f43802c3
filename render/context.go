package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/engine"
	"github.com/lixenwraith/swordfall/parameter"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Match  *engine.Match
	Paused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Arena viewport rows, HUD above and status line below
	ViewportTop    int
	ViewportBottom int

	// Screen cell of the world origin
	CenterX int
	CenterY int

	// Cells per meter on world X and Z
	ScaleX float64
	ScaleZ float64
}

// NewContext frames the whole arena floor top-down inside the screen, X to the right and Z down
func NewContext(m *engine.Match, paused bool, width, height int) Context {
	rows := height - parameter.HUDRows - parameter.StatusRows
	if rows < 1 {
		rows = 1
	}
	span := 2 * parameter.ArenaHalfSize

	scaleZ := float64(rows-1) / span
	scaleX := scaleZ * parameter.CellAspect
	if fit := float64(width-1) / span; scaleX > fit {
		scaleX = fit
		scaleZ = fit / parameter.CellAspect
	}

	return Context{
		Match:          m,
		Paused:         paused,
		ScreenWidth:    width,
		ScreenHeight:   height,
		ViewportTop:    parameter.HUDRows,
		ViewportBottom: parameter.HUDRows + rows - 1,
		CenterX:        width/2 + shakeOffset(m),
		CenterY:        parameter.HUDRows + rows/2,
		ScaleX:         scaleX,
		ScaleZ:         scaleZ,
	}
}

// shakeOffset moves the arena one cell left or right on alternate frames while the player is shaking
func shakeOffset(m *engine.Match) int {
	if m == nil || m.Player() == nil || !m.Player().Shaking() {
		return 0
	}
	if m.Frame()%2 == 0 {
		return 1
	}
	return -1
}

// MapToScreen projects a world position onto the floor plane; visible is false outside the arena viewport
func (c Context) MapToScreen(p mgl64.Vec3) (x, y int, visible bool) {
	x = c.CenterX + int(math.Round(p.X()*c.ScaleX))
	y = c.CenterY + int(math.Round(p.Z()*c.ScaleZ))
	visible = x >= 0 && x < c.ScreenWidth && y >= c.ViewportTop && y <= c.ViewportBottom
	return x, y, visible
}
