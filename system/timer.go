package system

import (
	"time"

	"github.com/lixenwraith/swordfall/component"
)

// TimerSystem decays timed combat state once per frame
type TimerSystem struct {
	weapons *WeaponController
}

func NewTimerSystem(weapons *WeaponController) *TimerSystem {
	return &TimerSystem{weapons: weapons}
}

func (s *TimerSystem) Name() string {
	return "timer"
}

// Update decrements hit flash, damage immunity, shake and swing timers, floored at zero
func (s *TimerSystem) Update(dt time.Duration, combatants ...*component.Combatant) {
	for _, c := range combatants {
		decay(&c.FlashRemaining, dt)
		decay(&c.ImmunityRemaining, dt)
		decay(&c.ShakeRemaining, dt)
		if c.Weapon != nil {
			s.weapons.Tick(c.Weapon, dt)
		}
	}
}

func decay(remaining *time.Duration, dt time.Duration) {
	if *remaining <= 0 {
		return
	}
	*remaining -= dt
	if *remaining < 0 {
		*remaining = 0
	}
}
