package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate (Hz)
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the default master volume in [0,1]
	AudioVolume = 0.6

	// MinCueGap is the minimum gap between two plays of the same cue
	MinCueGap = 50 * time.Millisecond
)

// Hit Cue Timing
const (
	HitCueDuration = 120 * time.Millisecond
	HitCueAttack   = 2 * time.Millisecond
	HitCueRelease  = 90 * time.Millisecond
)

// Block Cue Timing
const (
	BlockCueDuration = 90 * time.Millisecond
	BlockCueAttack   = 2 * time.Millisecond
	BlockCueRelease  = 60 * time.Millisecond
)

// Clash Cue Timing
const (
	ClashCueDuration        = 400 * time.Millisecond
	ClashCueAttack          = 2 * time.Millisecond
	ClashCueRingRelease     = 380 * time.Millisecond
	ClashCueOvertoneRelease = 150 * time.Millisecond
)

// Kick and Jump Cue Timing
const (
	KickCueDuration = 100 * time.Millisecond
	KickCueAttack   = 5 * time.Millisecond
	KickCueRelease  = 60 * time.Millisecond

	JumpCueDuration = 150 * time.Millisecond
	JumpCueAttack   = 20 * time.Millisecond
	JumpCueRelease  = 100 * time.Millisecond
)

// Fanfare Cue Timing
const (
	FanfareNoteDuration = 120 * time.Millisecond
	FanfareLastDuration = 360 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareNoteRelease  = 60 * time.Millisecond
	FanfareLastRelease  = 250 * time.Millisecond
)
