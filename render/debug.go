package render

import (
	"fmt"
	"strings"
)

// DebugRenderer prints frame, match and counter totals on the bottom row
type DebugRenderer struct {
	Visible bool
}

func (r *DebugRenderer) IsVisible() bool { return r.Visible }

func (r *DebugRenderer) Render(ctx Context, canvas *Canvas) {
	m := ctx.Match

	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d  match %s  %s", m.Frame(), m.ID().String()[:8], m.State())
	m.Instruments().Range(func(name string, total int64) {
		fmt.Fprintf(&sb, "  %s=%d", name, total)
	})

	_, h := canvas.Bounds()
	canvas.Text(0, h-1, sb.String(), baseStyle.Foreground(RgbDebugText))
}
