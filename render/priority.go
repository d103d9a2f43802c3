package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityArena
	PriorityEntities
	PriorityUI
	PriorityOverlay
	PriorityDebug
)

// SystemRenderer is implemented by every layer with visual output
type SystemRenderer interface {
	Render(ctx Context, canvas *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
