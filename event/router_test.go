package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/event/mocks"
)

func TestEmitDispatchesInRegistrationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := mocks.NewMockHandler(ctrl)
	second := mocks.NewMockHandler(ctrl)
	first.EXPECT().EventTypes().Return([]event.EventType{event.EventHit})
	second.EXPECT().EventTypes().Return([]event.EventType{event.EventHit, event.EventClash})

	hit := event.GameEvent{Type: event.EventHit, Payload: &event.HitPayload{Damage: 20}}
	gomock.InOrder(
		first.EXPECT().HandleEvent(hit),
		second.EXPECT().HandleEvent(hit),
	)

	r := event.NewRouter()
	r.Register(first)
	r.Register(second)
	r.Emit(hit)

	assert.True(t, r.HasHandlers(event.EventClash))
	assert.False(t, r.HasHandlers(event.EventJump))
}

func TestEmitUnhandledIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := mocks.NewMockHandler(ctrl)
	h.EXPECT().EventTypes().Return([]event.EventType{event.EventReset})
	h.EXPECT().HandleEvent(gomock.Any()).Times(0)

	r := event.NewRouter()
	r.Register(h)
	r.Emit(event.GameEvent{Type: event.EventKick})
}

func TestPushDefersUntilDispatch(t *testing.T) {
	var got []event.EventType
	r := event.NewRouter()
	r.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventHit, event.EventClash},
		Fn:    func(ev event.GameEvent) { got = append(got, ev.Type) },
	})

	r.Push(event.GameEvent{Type: event.EventClash})
	r.Push(event.GameEvent{Type: event.EventHit})
	assert.Empty(t, got)

	assert.Equal(t, 2, r.DispatchAll())
	assert.Equal(t, []event.EventType{event.EventClash, event.EventHit}, got)

	assert.Zero(t, r.DispatchAll())
}

func TestDiscard(t *testing.T) {
	called := false
	r := event.NewRouter()
	r.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventJump},
		Fn:    func(event.GameEvent) { called = true },
	})

	r.Push(event.GameEvent{Type: event.EventJump})
	r.Discard()
	r.DispatchAll()

	assert.False(t, called)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "match_end", event.EventMatchEnd.String())
	assert.Equal(t, "event(99)", event.EventType(99).String())
}
