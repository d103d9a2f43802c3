package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedTimeStep is the physics integration step, independent of the frame rate
	FixedTimeStep = time.Second / 60

	// MaxStepsPerFrame bounds catch-up stepping after a stall; excess time is dropped
	MaxStepsPerFrame = 5
)

// Contact Queue Limits
const (
	// ContactQueueSize is the fixed capacity of the per-step contact ring buffer
	ContactQueueSize = 256

	// ContactBufferMask is the bitmask for fast modulo operations (256 - 1)
	ContactBufferMask = 255
)

// Event Queue Limits
const (
	// EventQueueSize caps pending deferred combat events, the oldest are dropped beyond it
	EventQueueSize = 256
)

// Input
const (
	// HoldWindow is how long a terminal key press counts as held without an auto-repeat refresh
	HoldWindow = 180 * time.Millisecond

	// LookCellScale converts one terminal cell of mouse travel into look-delta pixels
	LookCellScale = 12.0
)
