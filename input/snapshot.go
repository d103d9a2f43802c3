package input

import (
	"sync"
	"time"
)

// Frame is the per-frame view of player intent produced by Snapshot.Consume
type Frame struct {
	MoveForward bool
	MoveBack    bool
	MoveLeft    bool
	MoveRight   bool
	Sprint      bool
	Block       bool

	Jump    bool
	Kick    bool
	Confirm bool

	LookDeltaX float64
	LookDeltaY float64
}

// Axes returns strafe (right positive) and forward (forward positive) in {-1,0,1}
func (f Frame) Axes() (strafe, forward float64) {
	if f.MoveRight {
		strafe++
	}
	if f.MoveLeft {
		strafe--
	}
	if f.MoveForward {
		forward++
	}
	if f.MoveBack {
		forward--
	}
	return strafe, forward
}

// Moving reports whether any movement action is held with a nonzero net axis
func (f Frame) Moving() bool {
	x, z := f.Axes()
	return x != 0 || z != 0
}

// Snapshot accumulates input between frames
// Written by the input goroutine, consumed once per frame by the game loop
//
// Held actions are either set explicitly (Set) or held until a deadline
// (HoldUntil) for devices without release events. Edge actions stay pending
// until the next Consume. Look deltas accumulate and reset on Consume.
type Snapshot struct {
	mu        sync.Mutex
	down      [actionCount]bool
	heldUntil [actionCount]time.Time
	edges     [actionCount]bool
	lookX     float64
	lookY     float64
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Set records an explicit press or release of a held action
func (s *Snapshot) Set(a Action, down bool) {
	if !a.Held() {
		return
	}
	s.mu.Lock()
	s.down[a] = down
	s.mu.Unlock()
}

// HoldUntil keeps a held action active until the deadline, extending any earlier one
func (s *Snapshot) HoldUntil(a Action, until time.Time) {
	if !a.Held() {
		return
	}
	s.mu.Lock()
	if until.After(s.heldUntil[a]) {
		s.heldUntil[a] = until
	}
	s.mu.Unlock()
}

// Press latches an edge action until the next Consume
func (s *Snapshot) Press(a Action) {
	if a.Held() || a == ActionNone || a >= actionCount {
		return
	}
	s.mu.Lock()
	s.edges[a] = true
	s.mu.Unlock()
}

// Look accumulates pointer motion
func (s *Snapshot) Look(dx, dy float64) {
	s.mu.Lock()
	s.lookX += dx
	s.lookY += dy
	s.mu.Unlock()
}

// Release drops every held action, used when focus is lost
func (s *Snapshot) Release() {
	s.mu.Lock()
	s.down = [actionCount]bool{}
	s.heldUntil = [actionCount]time.Time{}
	s.mu.Unlock()
}

// Consume returns the current intent and clears edges and look deltas
func (s *Snapshot) Consume(now time.Time) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := func(a Action) bool {
		return s.down[a] || now.Before(s.heldUntil[a])
	}

	f := Frame{
		MoveForward: held(ActionMoveForward),
		MoveBack:    held(ActionMoveBack),
		MoveLeft:    held(ActionMoveLeft),
		MoveRight:   held(ActionMoveRight),
		Sprint:      held(ActionSprint),
		Block:       held(ActionBlock),
		Jump:        s.edges[ActionJump],
		Kick:        s.edges[ActionKick],
		Confirm:     s.edges[ActionConfirm],
		LookDeltaX:  s.lookX,
		LookDeltaY:  s.lookY,
	}

	s.edges = [actionCount]bool{}
	s.lookX, s.lookY = 0, 0
	return f
}
