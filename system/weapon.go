package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/vmath"
)

// Impact is the classification tier of a weapon contact
type Impact uint8

const (
	ImpactNone Impact = iota
	ImpactClash
	ImpactHit
)

func (i Impact) String() string {
	switch i {
	case ImpactClash:
		return "clash"
	case ImpactHit:
		return "hit"
	}
	return "none"
}

// WeaponController drives weapon bodies toward their wielder's aim
// Stateless apart from tuning; one instance serves both combatants
type WeaponController struct {
	cfg config.Weapon
}

func NewWeaponController(cfg config.Weapon) *WeaponController {
	return &WeaponController{cfg: cfg}
}

// Target returns the world position the blade follows for the given aim
func (wc *WeaponController) Target(w *component.Weapon, aim component.Pose) mgl64.Vec3 {
	return aim.Position.Add(aim.Orientation.Rotate(w.Offset()))
}

// Update runs the follow law once
// Linear velocity is set proportionally to the target error unless a swing is in flight;
// orientation closes a fixed fraction toward the aim orientation
func (wc *WeaponController) Update(w *component.Weapon, aim component.Pose, guard bool) {
	w.Guard = guard
	body := w.Body

	if !w.Swinging() {
		strength := wc.cfg.ArmStrength
		if guard {
			strength = wc.cfg.GuardArmStrength
		}
		body.Velocity = wc.Target(w, aim).Sub(body.Position).Mul(strength)
	}

	body.Orientation = vmath.Slerp(body.Orientation, aim.Orientation, wc.cfg.RotationSmoothing)
}

// Attack launches the blade from→toward and suspends the follow law for the swing duration
func (wc *WeaponController) Attack(w *component.Weapon, from, toward mgl64.Vec3) {
	w.Body.Velocity = vmath.Normalize(toward.Sub(from)).Mul(wc.cfg.AttackSpeed)
	w.SwingRemaining = wc.cfg.SwingDuration
}

// Tick decays the swing timer
func (wc *WeaponController) Tick(w *component.Weapon, dt time.Duration) {
	decay(&w.SwingRemaining, dt)
}

// Place snaps the blade onto its target at rest, used on spawn and reset
func (wc *WeaponController) Place(w *component.Weapon, aim component.Pose) {
	w.Guard = false
	w.SwingRemaining = 0
	w.Body.Position = wc.Target(w, aim)
	w.Body.Orientation = aim.Orientation
	w.Body.Velocity = mgl64.Vec3{}
	w.Body.AngularVelocity = mgl64.Vec3{}
}

// Classify maps a signed impact velocity to a tier, both boundaries strict
func (wc *WeaponController) Classify(impact float64) Impact {
	v := impact
	if v < 0 {
		v = -v
	}
	switch {
	case v > wc.cfg.HitThreshold:
		return ImpactHit
	case v > wc.cfg.ClashThreshold:
		return ImpactClash
	}
	return ImpactNone
}
