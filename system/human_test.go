package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/input"
)

const tenth = 100 * time.Millisecond

func newHuman(a *arena) *HumanControl {
	return NewHumanControl(a.cfg.Player, a.weapons(), a.router, a.metrics)
}

func TestHumanStamina(t *testing.T) {
	tests := []struct {
		name     string
		in       input.Frame
		start    float64
		want     float64
		guarding bool
	}{
		{"regen idle", input.Frame{}, 50, 52, false},
		{"regen capped", input.Frame{}, 99.5, 100, false},
		{"sprint drains", input.Frame{Sprint: true, MoveForward: true}, 50, 47, false},
		{"sprint drains standing", input.Frame{Sprint: true}, 50, 47, false},
		{"guard drains", input.Frame{Block: true}, 50, 44, true},
		{"guard exhausts", input.Frame{Block: true}, 3, 0, false},
		{"guard without stamina regens", input.Frame{Block: true}, 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena()
			h := newHuman(a)
			a.player.Vitals.Stamina = tt.start
			a.in = tt.in

			h.Update(a.player, a, tenth)

			assert.InDelta(t, tt.want, a.player.Vitals.Stamina, 1e-9)
			assert.Equal(t, tt.guarding, a.player.Guarding)
			assert.Equal(t, tt.guarding, a.player.Weapon.Guard)
		})
	}
}

func TestHumanLocomotion(t *testing.T) {
	tests := []struct {
		name  string
		in    input.Frame
		stam  float64
		speed float64
		want  mgl64.Vec3
	}{
		{"walk forward", input.Frame{MoveForward: true}, 100, 5, mgl64.Vec3{0, 0, -1}},
		{"walk back", input.Frame{MoveBack: true}, 100, 5, mgl64.Vec3{0, 0, 1}},
		{"strafe right", input.Frame{MoveRight: true}, 100, 5, mgl64.Vec3{1, 0, 0}},
		{"sprint", input.Frame{MoveForward: true, Sprint: true}, 100, 8, mgl64.Vec3{0, 0, -1}},
		{"sprint exhausted walks", input.Frame{MoveForward: true, Sprint: true}, 0, 5, mgl64.Vec3{0, 0, -1}},
		{"diagonal normalised", input.Frame{MoveForward: true, MoveRight: true}, 100, 5, mgl64.Vec3{1, 0, -1}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena()
			h := newHuman(a)
			a.player.Vitals.Stamina = tt.stam
			a.in = tt.in

			h.Update(a.player, a, tenth)

			got := a.player.Body.Velocity
			assert.InDelta(t, tt.speed, mgl64.Vec3{got.X(), 0, got.Z()}.Len(), 1e-9)
			assert.True(t, mgl64.Vec3{got.X(), 0, got.Z()}.Normalize().ApproxEqualThreshold(tt.want, 1e-9))
		})
	}
}

func TestHumanIdleDampsHorizontalOnly(t *testing.T) {
	a := newArena()
	h := newHuman(a)
	a.player.Body.Velocity = mgl64.Vec3{4, -3, 4}

	h.Update(a.player, a, tenth)

	v := a.player.Body.Velocity
	assert.Less(t, v.X(), 4.0)
	assert.Less(t, v.Z(), 4.0)
	assert.Equal(t, -3.0, v.Y())
}

func TestHumanJump(t *testing.T) {
	t.Run("grounded", func(t *testing.T) {
		a := newArena()
		h := newHuman(a)
		a.in = input.Frame{Jump: true}

		h.Update(a.player, a, tenth)

		assert.Equal(t, a.cfg.Player.JumpVelocity, a.player.Body.Velocity.Y())
		// regen runs before the jump cost
		assert.InDelta(t, 90.0, a.player.Vitals.Stamina, 1e-9)
		events := a.flush()
		require.Len(t, events, 1)
		assert.Equal(t, event.EventJump, events[0].Type)
		assert.Equal(t, int64(1), a.metrics.Jumps.Load())
	})

	t.Run("airborne", func(t *testing.T) {
		a := newArena()
		h := newHuman(a)
		a.player.Body.Position = mgl64.Vec3{0, 3, 8}
		a.in = input.Frame{Jump: true}

		h.Update(a.player, a, tenth)

		assert.Zero(t, a.player.Body.Velocity.Y())
		assert.Empty(t, a.flush())
	})

	t.Run("stamina not above cost", func(t *testing.T) {
		a := newArena()
		h := newHuman(a)
		a.player.Vitals.Stamina = 8
		a.in = input.Frame{Jump: true}

		// regen brings it to exactly 10, which is not enough
		h.Update(a.player, a, tenth)

		assert.Zero(t, a.player.Body.Velocity.Y())
		assert.InDelta(t, 10.0, a.player.Vitals.Stamina, 1e-9)
	})
}

func TestHumanKick(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		a := newArena()
		h := newHuman(a)
		a.enemy.Body.Position = mgl64.Vec3{0, 1, 6}
		a.in = input.Frame{Kick: true}

		h.Update(a.player, a, tenth)

		want := -a.cfg.Player.KickForce / a.enemy.Body.Mass
		assert.InDelta(t, want, a.enemy.Body.Velocity.Z(), 1e-9)
		assert.InDelta(t, 75.0, a.player.Vitals.Stamina, 1e-9)
		events := a.flush()
		require.Len(t, events, 1)
		assert.True(t, events[0].Payload.(*event.KickPayload).Connected)
	})

	t.Run("out of range still costs", func(t *testing.T) {
		a := newArena()
		h := newHuman(a)
		a.in = input.Frame{Kick: true}

		h.Update(a.player, a, tenth)

		assert.Equal(t, mgl64.Vec3{}, a.enemy.Body.Velocity)
		assert.InDelta(t, 75.0, a.player.Vitals.Stamina, 1e-9)
		events := a.flush()
		require.Len(t, events, 1)
		assert.False(t, events[0].Payload.(*event.KickPayload).Connected)
		assert.Equal(t, int64(1), a.metrics.Kicks.Load())
	})
}

func TestHumanLook(t *testing.T) {
	a := newArena()
	h := newHuman(a)
	a.in = input.Frame{LookDeltaY: -10000}

	h.Update(a.player, a, tenth)

	_, pitch := h.Angles()
	assert.InDelta(t, math.Pi/2*a.cfg.Player.CameraSmoothing, pitch, 1e-9)

	// Target stays clamped, so the camera converges on the limit
	a.in = input.Frame{}
	for i := 0; i < 500; i++ {
		h.Update(a.player, a, tenth)
	}
	_, pitch = h.Angles()
	assert.InDelta(t, math.Pi/2, pitch, 1e-6)
}

func TestHumanYawTurnsBodyAndMovement(t *testing.T) {
	a := newArena()
	h := newHuman(a)
	// Turn left a quarter
	a.in = input.Frame{LookDeltaX: -math.Pi / 2 / a.cfg.Player.LookSensitivity}
	h.Update(a.player, a, tenth)

	yaw, _ := h.Angles()
	assert.InDelta(t, math.Pi/2*a.cfg.Player.CameraSmoothing, yaw, 1e-9)

	// Movement follows the target yaw immediately
	a.in = input.Frame{MoveForward: true}
	h.Update(a.player, a, tenth)
	v := a.player.Body.Velocity
	assert.InDelta(t, -5.0, v.X(), 1e-9)
	assert.InDelta(t, 0.0, v.Z(), 1e-9)
}

func TestHumanReset(t *testing.T) {
	a := newArena()
	h := newHuman(a)
	a.in = input.Frame{LookDeltaX: 100, LookDeltaY: 100, Block: true}
	h.Update(a.player, a, tenth)
	require.True(t, a.player.Guarding)

	h.Reset(a.player)

	yaw, pitch := h.Angles()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
	assert.False(t, a.player.Guarding)
}
