package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/physics"
)

func newContactSystem(a *arena) *ContactSystem {
	s := NewContactSystem(a.weapons(), a.damage(nil), a.router, a.metrics)
	s.Track(a.player)
	s.Track(a.enemy)
	return s
}

func TestContactHitThresholdStrict(t *testing.T) {
	tests := []struct {
		name   string
		impact float64
		health float64
		events []event.EventType
	}{
		{"below clash", -1.0, 100, nil},
		{"clash tier", -3.9, 100, []event.EventType{event.EventClash}},
		{"hit tier", -4.1, 80, []event.EventType{event.EventHit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena()
			s := newContactSystem(a)

			s.HandleContacts([]physics.Contact{{A: a.player.Weapon.Body, B: a.enemy.Body, ImpactVelocity: tt.impact}})

			assert.Equal(t, tt.health, a.enemy.Vitals.Health)
			var got []event.EventType
			for _, ev := range a.flush() {
				got = append(got, ev.Type)
			}
			assert.Equal(t, tt.events, got)
		})
	}
}

func TestContactEitherOrder(t *testing.T) {
	a := newArena()
	s := newContactSystem(a)

	s.HandleContacts([]physics.Contact{{A: a.player.Body, B: a.enemy.Weapon.Body, ImpactVelocity: 6}})

	assert.Equal(t, 80.0, a.player.Vitals.Health)
	assert.Equal(t, 100.0, a.enemy.Vitals.Health)
}

func TestContactWeaponOnWeaponNeverDamages(t *testing.T) {
	a := newArena()
	s := newContactSystem(a)

	s.HandleContacts([]physics.Contact{{A: a.player.Weapon.Body, B: a.enemy.Weapon.Body, ImpactVelocity: -9}})

	assert.Equal(t, 100.0, a.player.Vitals.Health)
	assert.Equal(t, 100.0, a.enemy.Vitals.Health)
	events := a.flush()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventClash, events[0].Type)
	assert.False(t, events[0].Payload.(*event.ClashPayload).BladeOnBody)
}

func TestContactClashDoesNotCancelHit(t *testing.T) {
	a := newArena()
	s := newContactSystem(a)

	s.HandleContacts([]physics.Contact{
		{A: a.player.Weapon.Body, B: a.enemy.Weapon.Body, ImpactVelocity: -9},
		{A: a.player.Weapon.Body, B: a.enemy.Body, ImpactVelocity: -9},
	})

	assert.Equal(t, 80.0, a.enemy.Vitals.Health)
	events := a.flush()
	require.Len(t, events, 2)
	assert.Equal(t, event.EventClash, events[0].Type)
	assert.Equal(t, event.EventHit, events[1].Type)
	assert.Equal(t, int64(1), a.metrics.Clashes.Load())
}

func TestContactIgnoresUntrackedAndSameOwner(t *testing.T) {
	a := newArena()
	s := newContactSystem(a)
	ground := a.world.Bodies()[0]

	s.HandleContacts([]physics.Contact{
		{A: ground, B: a.player.Weapon.Body, ImpactVelocity: -20},
		{A: a.enemy.Body, B: a.enemy.Weapon.Body, ImpactVelocity: -20},
		{A: a.player.Body, B: a.enemy.Body, ImpactVelocity: -20},
	})

	assert.Equal(t, 100.0, a.player.Vitals.Health)
	assert.Equal(t, 100.0, a.enemy.Vitals.Health)
	assert.Empty(t, a.flush())
}

func TestContactGateStopsProcessing(t *testing.T) {
	a := newArena()
	s := newContactSystem(a)
	active := true
	s.SetGate(func() bool { return active }, nil)

	active = false
	s.HandleContacts([]physics.Contact{{A: a.player.Weapon.Body, B: a.enemy.Body, ImpactVelocity: -9}})
	assert.Equal(t, 100.0, a.enemy.Vitals.Health)
}

func TestContactFromRealStep(t *testing.T) {
	a := newArena()
	a.world.Gravity = mgl64.Vec3{}
	s := newContactSystem(a)

	// Drive the player blade into the enemy body fast enough to hit
	blade := a.player.Weapon.Body
	blade.Position = a.enemy.Body.Position.Add(mgl64.Vec3{0, 0, 1.3})
	blade.Velocity = mgl64.Vec3{0, 0, -10}

	a.world.Step(1.0 / 60)
	s.HandleContacts(a.world.DrainContacts())

	assert.Equal(t, 80.0, a.enemy.Vitals.Health)
}
