package component

import (
	"time"

	"github.com/lixenwraith/swordfall/input"
	"github.com/lixenwraith/swordfall/physics"
)

// Combatant is one fighter in the arena
type Combatant struct {
	Mode       Mode
	Vitals     Vitals
	Body       *physics.Body
	Weapon     *Weapon
	Controller Controller

	// Spawn is the pose restored on reset
	Spawn Pose

	// BaseDamage is dealt by this combatant's weapon per landed hit
	BaseDamage float64

	// Guarding is the effective block state of the current frame
	Guarding bool

	// FlashRemaining is the remaining duration of hit visual feedback
	FlashRemaining time.Duration

	// ImmunityRemaining is remaining immunity time for damage
	ImmunityRemaining time.Duration

	// ShakeRemaining jitters the arena view, set only on the player
	ShakeRemaining time.Duration
}

// Pose returns the current body pose
func (c *Combatant) Pose() Pose {
	return PoseOf(c.Body)
}

// Alive reports health above zero
func (c *Combatant) Alive() bool {
	return c.Vitals.Alive()
}

// Immune reports an active damage immunity window
func (c *Combatant) Immune() bool {
	return c.ImmunityRemaining > 0
}

// Blocking reports whether incoming damage is reduced
func (c *Combatant) Blocking() bool {
	return c.Guarding && c.Vitals.Stamina > 0
}

// Flashing reports whether hit feedback is showing
func (c *Combatant) Flashing() bool {
	return c.FlashRemaining > 0
}

// Shaking reports whether the view jitters for this combatant
func (c *Combatant) Shaking() bool {
	return c.ShakeRemaining > 0
}

// Controller drives a combatant once per frame
type Controller interface {
	// Update applies intent for one frame of length dt
	Update(self *Combatant, env Env, dt time.Duration)

	// Reset clears controller state back to its initial configuration
	Reset(self *Combatant)
}

// Env is the view of the match a Controller acts in
type Env interface {
	Opponent(self *Combatant) *Combatant
	World() *physics.World
	Input() input.Frame
	// Frame is the current frame number, stamped on emitted events
	Frame() int64
}
