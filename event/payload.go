package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/swordfall/component"
)

// MatchStartPayload identifies the match that became active
type MatchStartPayload struct {
	MatchID uuid.UUID
}

// MatchEndPayload carries the winner
type MatchEndPayload struct {
	MatchID uuid.UUID
	Victor  component.Mode
}

// ResetPayload links the finished match to its replacement
type ResetPayload struct {
	PreviousID uuid.UUID
	MatchID    uuid.UUID
}

// HitPayload describes applied damage
type HitPayload struct {
	Target   component.Mode
	Attacker component.Mode
	Damage   float64 // Health actually removed
	Blocked  bool
	Impact   float64 // Absolute impact velocity of the contact
	Lethal   bool
}

// ClashPayload describes a non-damaging impact
type ClashPayload struct {
	Impact      float64
	BladeOnBody bool // False when weapon met weapon
}

// KickPayload reports whether the kick found its target
type KickPayload struct {
	Connected bool
}

// JumpPayload identifies the jumper
type JumpPayload struct {
	Mode component.Mode
}
