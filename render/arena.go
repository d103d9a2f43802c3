package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/engine"
	"github.com/lixenwraith/swordfall/parameter"
)

// ArenaRenderer draws the floor boundary
type ArenaRenderer struct{}

func (ArenaRenderer) Render(ctx Context, canvas *Canvas) {
	h := parameter.ArenaHalfSize
	left, top, _ := ctx.MapToScreen(mgl64.Vec3{-h, 0, -h})
	right, bottom, _ := ctx.MapToScreen(mgl64.Vec3{h, 0, h})
	style := baseStyle.Foreground(RgbArenaEdge)

	for x := left + 1; x < right; x++ {
		canvas.Set(x, top, parameter.ArenaEdge, style)
		canvas.Set(x, bottom, parameter.ArenaEdge, style)
	}
	for y := top + 1; y < bottom; y++ {
		canvas.Set(left, y, parameter.ArenaEdge, style)
		canvas.Set(right, y, parameter.ArenaEdge, style)
	}
	canvas.Set(left, top, parameter.ArenaCorner, style)
	canvas.Set(right, top, parameter.ArenaCorner, style)
	canvas.Set(left, bottom, parameter.ArenaCorner, style)
	canvas.Set(right, bottom, parameter.ArenaCorner, style)
}

// FighterRenderer draws bodies, facing markers and blades from the interpolated pose export
type FighterRenderer struct{}

func (FighterRenderer) Render(ctx Context, canvas *Canvas) {
	bodies := make(map[string]*component.Combatant, 2)
	blades := make(map[string]*component.Combatant, 2)
	for _, c := range ctx.Match.Combatants() {
		bodies[c.Body.Label] = c
		blades[c.Weapon.Body.Label] = c
	}

	poses := ctx.Match.RenderPoses()

	// Blades under bodies
	for _, rp := range poses {
		if c, ok := blades[rp.Label]; ok {
			drawBlade(ctx, canvas, c, rp)
		}
	}
	for _, rp := range poses {
		if c, ok := bodies[rp.Label]; ok {
			drawBody(ctx, canvas, c, rp)
		}
	}
}

func drawBlade(ctx Context, canvas *Canvas, c *component.Combatant, rp engine.RenderPose) {
	x, y, visible := ctx.MapToScreen(rp.Pose.Position)
	if !visible {
		return
	}
	glyph := rune(parameter.WeaponGlyph)
	if c.Weapon.Swinging() {
		glyph = parameter.SwingGlyph
	}
	canvas.Set(x, y, glyph, baseStyle.Foreground(RgbWeapon).Bold(c.Weapon.Guard))
}

func drawBody(ctx Context, canvas *Canvas, c *component.Combatant, rp engine.RenderPose) {
	x, y, visible := ctx.MapToScreen(rp.Pose.Position)
	if !visible {
		return
	}

	// Facing marker two meters ahead, skipped when it would overlap the body cell
	forward := rp.Pose.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
	if fx, fy, ok := ctx.MapToScreen(rp.Pose.Position.Add(forward.Mul(2))); ok && (fx != x || fy != y) {
		canvas.Set(fx, fy, parameter.FacingGlyph, baseStyle.Foreground(ModeColor(c.Mode)))
	}

	glyph := rune(parameter.PlayerGlyph)
	if c.Mode == component.ModeEnemy {
		glyph = parameter.EnemyGlyph
	}

	style := baseStyle.Foreground(ModeColor(c.Mode)).Bold(true)
	if c.FlashRemaining > 0 {
		style = style.Background(RgbHitFlash)
	}
	if c.Guarding {
		style = style.Reverse(true)
	}
	canvas.Set(x, y, glyph, style)
}
