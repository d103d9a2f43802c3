package system

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/telemetry"
	"github.com/lixenwraith/swordfall/vmath"
)

// DamageResolver applies hit-tier contacts to their target
type DamageResolver struct {
	weapon         config.Weapon
	blockReduction float64

	router  *event.Router
	metrics *telemetry.Instruments
	logger  zerolog.Logger

	// frame returns the current frame number for event stamping
	frame func() int64
	// onKill is invoked once per lethal hit with the surviving side
	onKill func(victor component.Mode)
}

// DamageDeps are the collaborators of a DamageResolver
type DamageDeps struct {
	Router  *event.Router
	Metrics *telemetry.Instruments
	Logger  zerolog.Logger
	Frame   func() int64
	OnKill  func(victor component.Mode)
}

func NewDamageResolver(cfg config.Config, deps DamageDeps) *DamageResolver {
	d := &DamageResolver{
		weapon:         cfg.Weapon,
		blockReduction: cfg.Player.BlockDamageReduction,
		router:         deps.Router,
		metrics:        deps.Metrics,
		logger:         deps.Logger,
		frame:          deps.Frame,
		onKill:         deps.OnKill,
	}
	if d.metrics == nil {
		d.metrics = telemetry.Noop()
	}
	if d.frame == nil {
		d.frame = func() int64 { return 0 }
	}
	return d
}

// Apply resolves one hit of attacker's weapon on target
// Returns false when the hit was ignored: dead target or active immunity
func (d *DamageResolver) Apply(attacker, target *component.Combatant, impact float64) bool {
	if !target.Alive() || target.Immune() {
		return false
	}

	damage := attacker.BaseDamage
	blocked := target.Blocking()
	if blocked {
		damage *= 1 - d.blockReduction
	}

	applied := target.Vitals.Damage(damage)

	// Knockback away from the attacker
	dir := vmath.Normalize(target.Body.Position.Sub(attacker.Body.Position))
	target.Body.ApplyImpulse(dir.Mul(d.weapon.KnockbackForce))

	target.FlashRemaining = d.weapon.HitFlash
	target.ImmunityRemaining = d.weapon.DamageImmunity
	if target.Mode == component.ModePlayer {
		target.ShakeRemaining = d.weapon.HitShake
	}

	lethal := !target.Alive()

	d.metrics.Hits.Add(1)
	if blocked {
		d.metrics.Blocks.Add(1)
	}
	d.logger.Debug().
		Stringer("attacker", attacker.Mode).
		Stringer("target", target.Mode).
		Float64("damage", applied).
		Float64("health", target.Vitals.Health).
		Bool("blocked", blocked).
		Msg("hit")

	if d.router != nil {
		d.router.Push(event.GameEvent{
			Type: event.EventHit,
			Payload: &event.HitPayload{
				Target:   target.Mode,
				Attacker: attacker.Mode,
				Damage:   applied,
				Blocked:  blocked,
				Impact:   math.Abs(impact),
				Lethal:   lethal,
			},
			Frame: d.frame(),
		})
	}

	if lethal && d.onKill != nil {
		d.onKill(attacker.Mode)
	}
	return true
}
