package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/telemetry"
	"github.com/lixenwraith/swordfall/vmath"
)

// HumanControl drives the player combatant from the consumed input frame
type HumanControl struct {
	cfg     config.Player
	weapons *WeaponController
	router  *event.Router
	metrics *telemetry.Instruments

	// Look targets accumulate input; camera angles approach them each frame
	targetYaw   float64
	targetPitch float64
	yaw         float64
	pitch       float64
}

func NewHumanControl(cfg config.Player, weapons *WeaponController, router *event.Router, metrics *telemetry.Instruments) *HumanControl {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &HumanControl{
		cfg:     cfg,
		weapons: weapons,
		router:  router,
		metrics: metrics,
	}
}

// Update applies one frame of player intent
func (h *HumanControl) Update(self *component.Combatant, env component.Env, dt time.Duration) {
	in := env.Input()
	sec := dt.Seconds()
	v := &self.Vitals

	// Stamina
	guard := in.Block && v.Stamina > 0
	if !in.Sprint && !guard {
		v.RegenStamina(h.cfg.StaminaRegen * sec)
	}
	if in.Sprint {
		v.DrainStamina(h.cfg.SprintCost * sec)
	}
	if guard {
		v.DrainStamina(h.cfg.BlockCost * sec)
	}
	if v.Stamina <= 0 {
		guard = false
	}
	self.Guarding = guard

	// Aim targets
	h.targetYaw -= in.LookDeltaX * h.cfg.LookSensitivity
	h.targetPitch -= in.LookDeltaY * h.cfg.LookSensitivity
	h.targetPitch = vmath.Clamp(h.targetPitch, -math.Pi/2, math.Pi/2)

	// Locomotion
	body := self.Body
	strafe, forward := in.Axes()
	if strafe != 0 || forward != 0 {
		speed := h.cfg.MoveSpeed
		if in.Sprint && v.Stamina > 0 {
			speed = h.cfg.SprintSpeed
		}
		dir := vmath.YawQuat(h.targetYaw).Rotate(mgl64.Vec3{strafe, 0, -forward}).Normalize()
		body.Velocity = vmath.WithHorizontal(body.Velocity, dir.Mul(speed))
	} else {
		body.Velocity = vmath.DampHorizontal(body.Velocity, h.cfg.IdleDamping, sec)
	}

	if in.Jump && v.HasStamina(h.cfg.JumpCost) && h.grounded(self, env.World()) {
		body.Velocity = mgl64.Vec3{body.Velocity.X(), h.cfg.JumpVelocity, body.Velocity.Z()}
		v.DrainStamina(h.cfg.JumpCost)
		h.metrics.Jumps.Add(1)
		h.push(event.EventJump, &event.JumpPayload{Mode: self.Mode}, env.Frame())
	}

	if in.Kick && v.HasStamina(h.cfg.KickCost) {
		connected := false
		if opp := env.Opponent(self); opp != nil {
			offset := opp.Body.Position.Sub(body.Position)
			if offset.Len() < h.cfg.KickRange {
				opp.Body.ApplyImpulse(vmath.Normalize(offset).Mul(h.cfg.KickForce))
				connected = true
			}
		}
		// Spent whether or not the kick lands
		v.DrainStamina(h.cfg.KickCost)
		h.metrics.Kicks.Add(1)
		h.push(event.EventKick, &event.KickPayload{Connected: connected}, env.Frame())
	}

	// Camera
	h.yaw = vmath.Approach(h.yaw, h.targetYaw, h.cfg.CameraSmoothing)
	h.pitch = vmath.Approach(h.pitch, h.targetPitch, h.cfg.CameraSmoothing)
	body.Orientation = vmath.YawQuat(h.yaw)

	h.weapons.Update(self.Weapon, h.Aim(self), guard)
}

// Aim returns the camera pose the weapon follows
func (h *HumanControl) Aim(self *component.Combatant) component.Pose {
	return component.Pose{
		Position:    self.Body.Position.Add(vmath.Up.Mul(h.cfg.EyeHeight)),
		Orientation: vmath.YawPitchQuat(h.yaw, h.pitch),
	}
}

// Angles returns the smoothed camera yaw and pitch
func (h *HumanControl) Angles() (yaw, pitch float64) {
	return h.yaw, h.pitch
}

// Reset zeroes camera state
func (h *HumanControl) Reset(self *component.Combatant) {
	h.targetYaw, h.targetPitch = 0, 0
	h.yaw, h.pitch = 0, 0
	self.Guarding = false
}

func (h *HumanControl) grounded(self *component.Combatant, world *physics.World) bool {
	from := self.Body.Position
	to := from.Sub(vmath.Up.Mul(h.cfg.JumpProbe))
	_, ok := world.RaycastClosest(from, to, physics.RayOptions{
		Mask: component.CategoryGround.Bit(),
		Skip: self.Body,
	})
	return ok
}

func (h *HumanControl) push(t event.EventType, payload any, frame int64) {
	if h.router == nil {
		return
	}
	h.router.Push(event.GameEvent{Type: t, Payload: payload, Frame: frame})
}
