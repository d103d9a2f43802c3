package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderers draw through
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Canvas is a bounds-checked drawing target for one frame
type Canvas struct {
	surface Surface
	width   int
	height  int
}

func newCanvas(s Surface) *Canvas {
	w, h := s.Size()
	return &Canvas{surface: s, width: w, height: h}
}

// Bounds returns canvas dimensions
func (c *Canvas) Bounds() (width, height int) {
	return c.width, c.height
}

// Set writes one cell, dropping out of bounds writes
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.surface.SetContent(x, y, r, nil, style)
}

// Text writes s left to right and returns the column after the last rune
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(x, y, r, style)
		x++
	}
	return x
}

// CenteredText writes s centered on row y
func (c *Canvas) CenteredText(y int, s string, style tcell.Style) {
	c.Text((c.width-len([]rune(s)))/2, y, s, style)
}
