package component

import "github.com/lixenwraith/swordfall/vmath"

// Vitals holds health and stamina, both clamped to [0,max] after every mutation
// Stamina is only consumed by the player variant
type Vitals struct {
	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64
}

func NewVitals(maxHealth, maxStamina float64) Vitals {
	return Vitals{
		Health:     maxHealth,
		MaxHealth:  maxHealth,
		Stamina:    maxStamina,
		MaxStamina: maxStamina,
	}
}

// Alive reports health above zero
func (v *Vitals) Alive() bool {
	return v.Health > 0
}

// Damage subtracts health and returns the amount actually removed
// No-op once dead or for non-positive amounts
func (v *Vitals) Damage(amount float64) float64 {
	if !v.Alive() || amount <= 0 {
		return 0
	}
	before := v.Health
	v.Health = vmath.Clamp(v.Health-amount, 0, v.MaxHealth)
	return before - v.Health
}

// HasStamina reports stamina strictly above cost
func (v *Vitals) HasStamina(cost float64) bool {
	return v.Stamina > cost
}

// DrainStamina subtracts stamina, floored at zero
func (v *Vitals) DrainStamina(amount float64) {
	v.Stamina = vmath.Clamp(v.Stamina-amount, 0, v.MaxStamina)
}

// RegenStamina adds stamina, capped at max
func (v *Vitals) RegenStamina(amount float64) {
	v.Stamina = vmath.Clamp(v.Stamina+amount, 0, v.MaxStamina)
}

// Restore refills health and stamina
func (v *Vitals) Restore() {
	v.Health = v.MaxHealth
	v.Stamina = v.MaxStamina
}
