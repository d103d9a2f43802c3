package event

//go:generate go tool mockgen -destination=./mocks/handler_mock.go -package=mocks . Handler

// Handler processes specific event types
// Audio cues, renderer flash and the match itself implement this
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously on the game loop goroutine
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Emit dispatches immediately, used for lifecycle transitions
//   - Push defers to the queue, DispatchAll drains it once per frame
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router with its own deferred queue
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    NewEventQueue(),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Emit dispatches an event to its handlers now
func (r *Router) Emit(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// Push queues an event for the next DispatchAll
func (r *Router) Push(ev GameEvent) {
	r.queue.Push(ev)
}

// DispatchAll consumes all pending events and routes them in FIFO order
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.Emit(ev)
	}
	return len(events)
}

// Discard drops pending events without dispatching
func (r *Router) Discard() {
	r.queue.Consume()
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }
