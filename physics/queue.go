package physics

import (
	"github.com/lixenwraith/swordfall/parameter"
)

// ContactQueue is a fixed ring buffer of contacts produced by World.Step
// Single-threaded: the world pushes during a step, the scheduler drains after it
//
// Overflow: oldest contacts overwritten when full
type ContactQueue struct {
	contacts [parameter.ContactQueueSize]Contact
	head     uint64 // Read index
	tail     uint64 // Write index
	dropped  uint64
}

// Push appends a contact, overwriting the oldest unread one when full
func (q *ContactQueue) Push(c Contact) {
	q.contacts[q.tail&parameter.ContactBufferMask] = c
	q.tail++

	if q.tail-q.head > parameter.ContactQueueSize {
		q.head = q.tail - parameter.ContactQueueSize
		q.dropped++
	}
}

// Consume returns all pending contacts in FIFO order and empties the queue
func (q *ContactQueue) Consume() []Contact {
	if q.tail == q.head {
		return nil
	}

	result := make([]Contact, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		idx := i & parameter.ContactBufferMask
		result = append(result, q.contacts[idx])
		q.contacts[idx] = Contact{}
	}
	q.head = q.tail
	return result
}

// Len returns pending contact count
func (q *ContactQueue) Len() int {
	return int(q.tail - q.head)
}

// Dropped returns the number of contacts overwritten before being consumed
func (q *ContactQueue) Dropped() uint64 {
	return q.dropped
}

// Clear discards pending contacts
func (q *ContactQueue) Clear() {
	for i := q.head; i < q.tail; i++ {
		q.contacts[i&parameter.ContactBufferMask] = Contact{}
	}
	q.head = q.tail
}
