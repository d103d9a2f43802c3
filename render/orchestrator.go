package render

import (
	"github.com/lixenwraith/swordfall/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	surface   Surface
	renderers []rendererEntry
	regCount  int
}

func NewOrchestrator(surface Surface) *Orchestrator {
	return &Orchestrator{
		surface:   surface,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers every arena layer
func NewDefaultOrchestrator(surface Surface, debug bool) *Orchestrator {
	o := NewOrchestrator(surface)
	o.Register(ArenaRenderer{}, PriorityArena)
	o.Register(FighterRenderer{}, PriorityEntities)
	o.Register(HUDRenderer{}, PriorityUI)
	o.Register(OverlayRenderer{}, PriorityOverlay)
	o.Register(&DebugRenderer{Visible: debug}, PriorityDebug)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(m *engine.Match, paused bool) {
	o.surface.Clear()

	canvas := newCanvas(o.surface)
	ctx := NewContext(m, paused, canvas.width, canvas.height)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, canvas)
	}

	o.surface.Show()
}
