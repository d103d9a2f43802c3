package render

import (
	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/engine"
)

const (
	titleText   = "SWORDFALL"
	startText   = "press Enter to fight"
	victoryText = "VICTORY"
	defeatText  = "DEFEAT"
	restartText = "press Enter to fight again"
	pausedText  = "PAUSED"
)

// OverlayRenderer draws centered state banners over the arena
type OverlayRenderer struct{}

func (OverlayRenderer) Render(ctx Context, canvas *Canvas) {
	text := baseStyle.Foreground(RgbText)

	switch ctx.Match.State() {
	case engine.StateIdle:
		canvas.CenteredText(ctx.CenterY-1, titleText, text.Bold(true))
		canvas.CenteredText(ctx.CenterY+1, startText, text)
	case engine.StateEnded:
		banner, color := defeatText, RgbDefeat
		if victor, _ := ctx.Match.Victor(); victor == component.ModePlayer {
			banner, color = victoryText, RgbVictory
		}
		canvas.CenteredText(ctx.CenterY-1, banner, baseStyle.Foreground(color).Bold(true))
		canvas.CenteredText(ctx.CenterY+1, restartText, text)
	}

	if ctx.Paused {
		canvas.CenteredText(ctx.ViewportTop, pausedText, text.Reverse(true))
	}
}
