package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/parameter"
)

// HUDRenderer draws one vitals row per combatant above the arena
type HUDRenderer struct{}

func (HUDRenderer) Render(ctx Context, canvas *Canvas) {
	for row, c := range ctx.Match.Combatants() {
		label := baseStyle.Foreground(ModeColor(c.Mode)).Bold(true)
		text := baseStyle.Foreground(RgbText)

		x := canvas.Text(0, row, fmt.Sprintf("%-7s", c.Mode.String()), label)
		x = canvas.Text(x, row, "HP ", text)

		ratio := barRatio(c.Vitals.Health, c.Vitals.MaxHealth)
		x = drawBar(canvas, x, row, ratio, HealthColor(ratio))
		x = canvas.Text(x, row, fmt.Sprintf(" %3.0f  ", c.Vitals.Health), text)

		// Only the player spends stamina
		if c.Mode == component.ModePlayer {
			x = canvas.Text(x, row, "ST ", text)
			x = drawBar(canvas, x, row, barRatio(c.Vitals.Stamina, c.Vitals.MaxStamina), RgbStamina)
			canvas.Text(x, row, fmt.Sprintf(" %3.0f", c.Vitals.Stamina), text)
			continue
		}
		canvas.Text(x, row, "ai "+ctx.Match.AIState(), baseStyle.Foreground(RgbDebugText))
	}
}

// barRatio returns value/limit clamped to [0, 1]
func barRatio(value, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, value/limit))
}

// drawBar fills BarWidth cells proportionally, any positive ratio shows at least one cell
func drawBar(canvas *Canvas, x, y int, ratio float64, fill tcell.Color) int {
	filled := int(math.Ceil(ratio * parameter.BarWidth))
	for i := 0; i < parameter.BarWidth; i++ {
		if i < filled {
			canvas.Set(x+i, y, parameter.BarFullGlyph, baseStyle.Foreground(fill))
			continue
		}
		canvas.Set(x+i, y, parameter.BarEmptyGlyph, baseStyle.Foreground(RgbBarEmpty))
	}
	return x + parameter.BarWidth
}
