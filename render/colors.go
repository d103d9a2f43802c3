package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swordfall/component"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbArenaEdge  = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbPlayer     = tcell.NewRGBColor(125, 207, 255) // Cyan
	RgbEnemy      = tcell.NewRGBColor(255, 158, 100) // Orange
	RgbWeapon     = tcell.NewRGBColor(192, 202, 245) // Steel
	RgbHitFlash   = tcell.NewRGBColor(247, 118, 142) // Red flash background
	RgbStamina    = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbBarEmpty   = tcell.NewRGBColor(65, 72, 104)   // Dim gray
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Foreground text
	RgbDebugText  = tcell.NewRGBColor(120, 124, 153) // Comment gray
	RgbVictory    = tcell.NewRGBColor(158, 206, 106) // Green
	RgbDefeat     = tcell.NewRGBColor(247, 118, 142) // Red

	// Health gradient from empty to full
	healthGradient = [...]tcell.Color{
		tcell.NewRGBColor(247, 118, 142),
		tcell.NewRGBColor(255, 158, 100),
		tcell.NewRGBColor(224, 175, 104),
		tcell.NewRGBColor(187, 200, 110),
		tcell.NewRGBColor(158, 206, 106),
	}
)

// baseStyle is the default cell style on the arena background
var baseStyle = tcell.StyleDefault.Background(RgbBackground)

// ModeColor returns the identifying color of a side
func ModeColor(m component.Mode) tcell.Color {
	if m == component.ModeEnemy {
		return RgbEnemy
	}
	return RgbPlayer
}

// HealthColor maps a health ratio onto the gradient, ratio clamped to [0, 1]
func HealthColor(ratio float64) tcell.Color {
	segment := int(ratio * float64(len(healthGradient)))
	if segment >= len(healthGradient) {
		segment = len(healthGradient) - 1
	}
	if segment < 0 {
		segment = 0
	}
	return healthGradient[segment]
}
