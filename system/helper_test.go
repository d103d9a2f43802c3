package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/input"
	"github.com/lixenwraith/swordfall/parameter"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/telemetry"
)

// arena is a minimal match stand-in implementing component.Env
type arena struct {
	cfg     config.Config
	world   *physics.World
	player  *component.Combatant
	enemy   *component.Combatant
	in      input.Frame
	frame   int64
	router  *event.Router
	metrics *telemetry.Instruments
	events  []event.GameEvent
}

func newArena() *arena {
	cfg := config.Default()
	a := &arena{
		cfg:     cfg,
		world:   physics.NewWorld(mgl64.Vec3{0, cfg.Physics.Gravity, 0}),
		router:  event.NewRouter(),
		metrics: telemetry.Noop(),
	}

	ground := physics.NewPlane("ground", parameter.GroundHeight)
	ApplyFilter(ground, component.CategoryGround)
	a.world.Add(ground)

	a.player = a.fighter(component.ModePlayer, mgl64.Vec3{0, 1, 8}, cfg.Player.MaxHealth, cfg.Player.MaxStamina, cfg.Player.Damage)
	a.enemy = a.fighter(component.ModeEnemy, mgl64.Vec3{0, 1, 0}, cfg.Enemy.MaxHealth, 0, cfg.Enemy.Damage)

	a.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventHit, event.EventClash, event.EventKick, event.EventJump},
		Fn:    func(ev event.GameEvent) { a.events = append(a.events, ev) },
	})
	return a
}

func (a *arena) fighter(mode component.Mode, pos mgl64.Vec3, health, stamina, damage float64) *component.Combatant {
	body := physics.NewBox(mode.String(), mgl64.Vec3{0.5, 1, 0.5}, parameter.CombatantMass, pos)
	body.FixedRotation = true
	ApplyFilter(body, mode.BodyCategory())
	a.world.Add(body)

	blade := physics.NewBox(mode.String()+"_weapon", mgl64.Vec3{0.05, 0.05, 0.9}, parameter.WeaponMass, pos.Add(mgl64.Vec3{0, 0, -1.5}))
	blade.GravityScale = 0
	blade.FixedRotation = true
	blade.Monitor = true
	ApplyFilter(blade, mode.WeaponCategory())
	a.world.Add(blade)

	c := &component.Combatant{
		Mode:       mode,
		Vitals:     component.NewVitals(health, stamina),
		Body:       body,
		BaseDamage: damage,
		Spawn:      component.PoseOf(body),
	}
	c.Weapon = &component.Weapon{
		Body:  blade,
		Owner: c,
		Profile: component.WeaponProfile{
			NeutralOffset: mgl64.Vec3{parameter.WeaponNeutralOffsetX, parameter.WeaponNeutralOffsetY, parameter.WeaponNeutralOffsetZ},
			GuardOffset:   mgl64.Vec3{parameter.WeaponGuardOffsetX, parameter.WeaponGuardOffsetY, parameter.WeaponGuardOffsetZ},
		},
	}
	return c
}

func (a *arena) Opponent(self *component.Combatant) *component.Combatant {
	if self == a.player {
		return a.enemy
	}
	return a.player
}

func (a *arena) World() *physics.World { return a.world }
func (a *arena) Input() input.Frame    { return a.in }
func (a *arena) Frame() int64          { return a.frame }

// flush dispatches deferred events into a.events
func (a *arena) flush() []event.GameEvent {
	a.router.DispatchAll()
	out := a.events
	a.events = nil
	return out
}

func (a *arena) weapons() *WeaponController {
	return NewWeaponController(a.cfg.Weapon)
}

func (a *arena) damage(onKill func(component.Mode)) *DamageResolver {
	return NewDamageResolver(a.cfg, DamageDeps{
		Router:  a.router,
		Metrics: a.metrics,
		Logger:  zerolog.Nop(),
		Frame:   func() int64 { return a.frame },
		OnKill:  onKill,
	})
}
