package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventHit, Frame: int64(i)})
	}
	assert.Equal(t, 5, q.Len())

	got := q.Consume()
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, int64(i), ev.Frame)
	}
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 3
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, int64(3), got[0].Frame)
	assert.Equal(t, int64(total-1), got[len(got)-1].Frame)
}

func TestQueuePushDuringConsumeGoesToNextBatch(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventHit, Frame: 1})

	batch := q.Consume()
	require.Len(t, batch, 1)

	// A handler reacting to the batch queues a follow-up
	q.Push(GameEvent{Type: EventClash, Frame: 2})
	assert.Equal(t, EventHit, batch[0].Type)

	next := q.Consume()
	require.Len(t, next, 1)
	assert.Equal(t, int64(2), next[0].Frame)
	assert.Zero(t, q.Len())
}
