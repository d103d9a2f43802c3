package event

import "github.com/lixenwraith/swordfall/parameter"

// EventQueue holds deferred events until the frame's dispatch
// Push and Consume both run on the game loop goroutine
type EventQueue struct {
	pending []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest once EventQueueSize are pending
func (eq *EventQueue) Push(ev GameEvent) {
	if len(eq.pending) == parameter.EventQueueSize {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
	}
	eq.pending = append(eq.pending, ev)
}

// Consume hands over the pending batch in push order, nil when empty
// Events pushed while the batch is being handled land in the next batch
func (eq *EventQueue) Consume() []GameEvent {
	batch := eq.pending
	eq.pending = nil
	return batch
}

func (eq *EventQueue) Len() int {
	return len(eq.pending)
}
