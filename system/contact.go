package system

import (
	"math"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/telemetry"
)

type bodyRole struct {
	owner  *component.Combatant
	weapon bool
}

// ContactSystem routes drained contacts to damage resolution and clash notification
// Contacts are handled in queue order; a clash never cancels a hit of the same step
type ContactSystem struct {
	weapons *WeaponController
	damage  *DamageResolver
	router  *event.Router
	metrics *telemetry.Instruments

	roles map[*physics.Body]bodyRole

	// active gates processing, contacts are dropped once the match is over
	active func() bool
	frame  func() int64
}

func NewContactSystem(weapons *WeaponController, damage *DamageResolver, router *event.Router, metrics *telemetry.Instruments) *ContactSystem {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &ContactSystem{
		weapons: weapons,
		damage:  damage,
		router:  router,
		metrics: metrics,
		roles:   make(map[*physics.Body]bodyRole),
		active:  func() bool { return true },
		frame:   func() int64 { return 0 },
	}
}

// SetGate installs the activity check and frame source
func (s *ContactSystem) SetGate(active func() bool, frame func() int64) {
	if active != nil {
		s.active = active
	}
	if frame != nil {
		s.frame = frame
	}
}

func (s *ContactSystem) Name() string {
	return "contact"
}

// Track registers the bodies of a combatant
func (s *ContactSystem) Track(c *component.Combatant) {
	s.roles[c.Body] = bodyRole{owner: c}
	if c.Weapon != nil {
		s.roles[c.Weapon.Body] = bodyRole{owner: c, weapon: true}
	}
}

// HandleContacts processes the contacts of one physics step
func (s *ContactSystem) HandleContacts(contacts []physics.Contact) {
	for _, c := range contacts {
		if !s.active() {
			return
		}

		a, okA := s.roles[c.A]
		b, okB := s.roles[c.B]
		if !okA || !okB || a.owner == b.owner {
			continue
		}

		switch {
		case a.weapon && b.weapon:
			if s.weapons.Classify(c.ImpactVelocity) != ImpactNone {
				s.clash(c.ImpactVelocity, false)
			}
		case a.weapon:
			s.bladeOnBody(a.owner, b.owner, c.ImpactVelocity)
		case b.weapon:
			s.bladeOnBody(b.owner, a.owner, c.ImpactVelocity)
		}
	}
}

func (s *ContactSystem) bladeOnBody(attacker, target *component.Combatant, impact float64) {
	switch s.weapons.Classify(impact) {
	case ImpactHit:
		s.damage.Apply(attacker, target, impact)
	case ImpactClash:
		s.clash(impact, true)
	}
}

func (s *ContactSystem) clash(impact float64, bladeOnBody bool) {
	s.metrics.Clashes.Add(1)
	if s.router == nil {
		return
	}
	s.router.Push(event.GameEvent{
		Type:    event.EventClash,
		Payload: &event.ClashPayload{Impact: math.Abs(impact), BladeOnBody: bladeOnBody},
		Frame:   s.frame(),
	})
}
