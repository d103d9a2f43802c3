package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/physics"
)

// WeaponProfile holds the per-wielder follow offsets, expressed in the aim frame
type WeaponProfile struct {
	NeutralOffset mgl64.Vec3
	GuardOffset   mgl64.Vec3
}

// Weapon is a blade driven toward a target pose derived from its owner's aim
type Weapon struct {
	Body    *physics.Body
	Owner   *Combatant
	Profile WeaponProfile

	// Guard selects the guard offset and the stiffer arm strength
	Guard bool

	// SwingRemaining is the remaining time the follow law is bypassed by a swing
	SwingRemaining time.Duration
}

// Swinging reports whether an attack swing is in flight
func (w *Weapon) Swinging() bool {
	return w.SwingRemaining > 0
}

// Offset returns the active follow offset
func (w *Weapon) Offset() mgl64.Vec3 {
	if w.Guard {
		return w.Profile.GuardOffset
	}
	return w.Profile.NeutralOffset
}
