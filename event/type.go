package event

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	// === Lifecycle Event ===

	// EventMatchStart signals the match became active
	// Trigger: Match.Start, Match.Reset
	// Consumer: audio, render | Payload: *MatchStartPayload
	EventMatchStart EventType = iota

	// EventMatchEnd signals one combatant reached zero health
	// Trigger: DamageResolver kill | Payload: *MatchEndPayload
	EventMatchEnd

	// EventReset signals combatants and physics were restored to spawn
	// Trigger: Match.Reset | Payload: *ResetPayload
	EventReset

	// === Combat Event ===

	// EventHit signals damage applied by a weapon
	// Trigger: hit-tier weapon contact | Payload: *HitPayload
	EventHit

	// EventClash signals a cosmetic weapon impact
	// Trigger: clash-tier contact or weapon on weapon | Payload: *ClashPayload
	EventClash

	// EventKick signals a kick attempt, connected or not
	// Trigger: HumanControl | Payload: *KickPayload
	EventKick

	// EventJump signals a successful grounded jump
	// Trigger: HumanControl | Payload: *JumpPayload
	EventJump
)

func (t EventType) String() string {
	switch t {
	case EventMatchStart:
		return "match_start"
	case EventMatchEnd:
		return "match_end"
	case EventReset:
		return "reset"
	case EventHit:
		return "hit"
	case EventClash:
		return "clash"
	case EventKick:
		return "kick"
	case EventJump:
		return "jump"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// GameEvent is a single typed notification
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number at emission
}
