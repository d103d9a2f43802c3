package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/input"
	"github.com/lixenwraith/swordfall/parameter"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/system"
	"github.com/lixenwraith/swordfall/telemetry"
	"github.com/lixenwraith/swordfall/vmath"
)

// State is the match lifecycle phase
type State int

const (
	StateIdle State = iota
	StateActive
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Option configures a Match
type Option func(*Match)

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Match) { m.logger = logger }
}

// WithRouter shares an event router with collaborators registered before NewMatch
func WithRouter(router *event.Router) Option {
	return func(m *Match) { m.router = router }
}

func WithInstruments(metrics *telemetry.Instruments) Option {
	return func(m *Match) { m.metrics = metrics }
}

// Match owns one arena: physics world, both combatants, scheduler and lifecycle
// Not safe for concurrent use; every method runs on the frame goroutine
type Match struct {
	cfg config.Config

	id     uuid.UUID
	state  State
	victor component.Mode
	frame  int64
	in     input.Frame

	world  *physics.World
	player *component.Combatant
	enemy  *component.Combatant

	human     *system.HumanControl
	ai        *system.AIControl
	weapons   *system.WeaponController
	timers    *system.TimerSystem
	contacts  *system.ContactSystem
	scheduler *Scheduler

	router  *event.Router
	metrics *telemetry.Instruments
	logger  zerolog.Logger
}

// NewMatch builds an idle match from validated configuration
func NewMatch(cfg config.Config, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	m := &Match{
		cfg:    cfg,
		id:     uuid.New(),
		state:  StateIdle,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.router == nil {
		m.router = event.NewRouter()
	}
	if m.metrics == nil {
		m.metrics = telemetry.Noop()
	}

	m.world = physics.NewWorld(mgl64.Vec3{0, cfg.Physics.Gravity, 0})
	ground := physics.NewPlane("ground", parameter.GroundHeight)
	system.ApplyFilter(ground, component.CategoryGround)
	m.world.Add(ground)

	m.weapons = system.NewWeaponController(cfg.Weapon)
	m.timers = system.NewTimerSystem(m.weapons)
	m.human = system.NewHumanControl(cfg.Player, m.weapons, m.router, m.metrics)
	m.ai = system.NewAIControl(cfg.Enemy, m.weapons, m.logger.With().Str("component", "ai").Logger())

	m.player = m.spawn(component.ModePlayer,
		component.Pose{
			Position:    mgl64.Vec3{parameter.PlayerSpawnX, parameter.PlayerSpawnY, parameter.PlayerSpawnZ},
			Orientation: mgl64.QuatIdent(),
		},
		component.NewVitals(cfg.Player.MaxHealth, cfg.Player.MaxStamina),
		cfg.Player.Damage,
		component.WeaponProfile{
			NeutralOffset: mgl64.Vec3{parameter.WeaponNeutralOffsetX, parameter.WeaponNeutralOffsetY, parameter.WeaponNeutralOffsetZ},
			GuardOffset:   mgl64.Vec3{parameter.WeaponGuardOffsetX, parameter.WeaponGuardOffsetY, parameter.WeaponGuardOffsetZ},
		},
		m.human,
	)

	enemyPos := mgl64.Vec3{parameter.EnemySpawnX, parameter.EnemySpawnY, parameter.EnemySpawnZ}
	facing, _ := vmath.HorizontalDir(enemyPos, m.player.Spawn.Position)
	m.enemy = m.spawn(component.ModeEnemy,
		component.Pose{
			Position:    enemyPos,
			Orientation: vmath.YawQuat(vmath.FacingYaw(facing)),
		},
		component.NewVitals(cfg.Enemy.MaxHealth, 0),
		cfg.Enemy.Damage,
		component.WeaponProfile{
			NeutralOffset: mgl64.Vec3{0, 0, parameter.EnemyWeaponOffsetZ},
			GuardOffset:   mgl64.Vec3{0, 0, parameter.EnemyWeaponOffsetZ},
		},
		m.ai,
	)

	damage := system.NewDamageResolver(cfg, system.DamageDeps{
		Router:  m.router,
		Metrics: m.metrics,
		Logger:  m.logger,
		Frame:   m.Frame,
		OnKill:  m.End,
	})
	m.contacts = system.NewContactSystem(m.weapons, damage, m.router, m.metrics)
	m.contacts.SetGate(func() bool { return m.state == StateActive }, m.Frame)
	m.contacts.Track(m.player)
	m.contacts.Track(m.enemy)

	m.scheduler = NewScheduler(m.world, cfg.Physics, m.metrics, m.logger)
	m.scheduler.SetContactHandler(m.contacts.HandleContacts)
	for _, c := range m.Combatants() {
		m.scheduler.Track(c.Body)
		m.scheduler.Track(c.Weapon.Body)
	}

	m.placeWeapons()
	m.scheduler.Reset()
	return m, nil
}

func (m *Match) spawn(mode component.Mode, pose component.Pose, vitals component.Vitals, damage float64, profile component.WeaponProfile, ctrl component.Controller) *component.Combatant {
	body := physics.NewBox(mode.String(),
		mgl64.Vec3{parameter.CombatantHalfWidth, parameter.CombatantHalfHeight, parameter.CombatantHalfWidth},
		parameter.CombatantMass, pose.Position)
	body.Orientation = pose.Orientation
	body.FixedRotation = true
	body.Restitution = parameter.Restitution
	system.ApplyFilter(body, mode.BodyCategory())
	m.world.Add(body)

	blade := physics.NewBox(mode.String()+"_weapon",
		mgl64.Vec3{parameter.WeaponHalfThickness, parameter.WeaponHalfThickness, parameter.WeaponHalfLength},
		parameter.WeaponMass, pose.Position)
	blade.GravityScale = 0
	blade.FixedRotation = true
	blade.Monitor = true
	blade.Restitution = parameter.Restitution
	system.ApplyFilter(blade, mode.WeaponCategory())
	m.world.Add(blade)

	c := &component.Combatant{
		Mode:       mode,
		Vitals:     vitals,
		Body:       body,
		Controller: ctrl,
		Spawn:      pose,
		BaseDamage: damage,
	}
	c.Weapon = &component.Weapon{Body: blade, Owner: c, Profile: profile}
	return c
}

func (m *Match) placeWeapons() {
	m.weapons.Place(m.player.Weapon, m.human.Aim(m.player))
	m.weapons.Place(m.enemy.Weapon, m.ai.Aim(m.enemy))
}

// Start moves an idle match to active
func (m *Match) Start() bool {
	if m.state != StateIdle {
		return false
	}
	m.state = StateActive
	m.metrics.Matches.Add(1)
	m.logger.Info().Stringer("match", m.id).Msg("match started")
	m.router.Emit(event.GameEvent{
		Type:    event.EventMatchStart,
		Payload: &event.MatchStartPayload{MatchID: m.id},
		Frame:   m.frame,
	})
	return true
}

// End finishes an active match; later calls are no-ops
func (m *Match) End(victor component.Mode) {
	if m.state != StateActive {
		return
	}
	m.state = StateEnded
	m.victor = victor
	m.scheduler.Halt()
	m.logger.Info().Stringer("match", m.id).Stringer("victor", victor).Int64("frame", m.frame).Msg("match ended")
	m.router.Emit(event.GameEvent{
		Type:    event.EventMatchEnd,
		Payload: &event.MatchEndPayload{MatchID: m.id, Victor: victor},
		Frame:   m.frame,
	})
}

// Reset restores both combatants to spawn and starts a new match
// Pending combat events of the previous match are discarded
func (m *Match) Reset() {
	previous := m.id
	m.router.Discard()

	for _, c := range m.Combatants() {
		c.Spawn.Apply(c.Body)
		c.Body.Velocity = mgl64.Vec3{}
		c.Body.AngularVelocity = mgl64.Vec3{}
		c.Vitals.Restore()
		c.Guarding = false
		c.FlashRemaining = 0
		c.ImmunityRemaining = 0
		c.ShakeRemaining = 0
		c.Controller.Reset(c)
	}
	m.placeWeapons()
	m.scheduler.Reset()

	m.id = uuid.New()
	m.state = StateActive
	m.in = input.Frame{}
	m.metrics.Matches.Add(1)

	m.logger.Info().Stringer("previous", previous).Stringer("match", m.id).Msg("match reset")
	m.router.Emit(event.GameEvent{
		Type:    event.EventReset,
		Payload: &event.ResetPayload{PreviousID: previous, MatchID: m.id},
		Frame:   m.frame,
	})
	m.router.Emit(event.GameEvent{
		Type:    event.EventMatchStart,
		Payload: &event.MatchStartPayload{MatchID: m.id},
		Frame:   m.frame,
	})
}

// Step runs one render frame: controllers, timed state, physics, deferred events
// Input is ignored and nothing steps unless the match is active
func (m *Match) Step(elapsed time.Duration, in input.Frame) int {
	m.frame++
	if m.state != StateActive {
		m.in = input.Frame{}
		m.router.DispatchAll()
		return 0
	}

	// Per-frame updates use the same stall bound as the scheduler
	dt := elapsed
	if limit := time.Duration(m.cfg.Physics.MaxStepsPerFrame) * m.cfg.Physics.FixedStep; dt > limit {
		dt = limit
	}

	m.in = in
	for _, c := range m.Combatants() {
		c.Controller.Update(c, m, dt)
	}
	m.timers.Update(dt, m.player, m.enemy)

	steps, _ := m.scheduler.Advance(elapsed)
	m.router.DispatchAll()
	return steps
}

// Opponent implements component.Env
func (m *Match) Opponent(self *component.Combatant) *component.Combatant {
	switch self {
	case m.player:
		return m.enemy
	case m.enemy:
		return m.player
	}
	return nil
}

func (m *Match) World() *physics.World { return m.world }
func (m *Match) Input() input.Frame    { return m.in }
func (m *Match) Frame() int64          { return m.frame }

func (m *Match) ID() uuid.UUID                       { return m.id }
func (m *Match) State() State                        { return m.state }
func (m *Match) Router() *event.Router               { return m.router }
func (m *Match) Player() *component.Combatant        { return m.player }
func (m *Match) Enemy() *component.Combatant         { return m.enemy }
func (m *Match) Scheduler() *Scheduler               { return m.scheduler }
func (m *Match) Instruments() *telemetry.Instruments { return m.metrics }

// Combatants returns player then enemy
func (m *Match) Combatants() []*component.Combatant {
	return []*component.Combatant{m.player, m.enemy}
}

// Victor returns the winning side of an ended match
func (m *Match) Victor() (component.Mode, bool) {
	return m.victor, m.state == StateEnded
}

// RenderPoses exports interpolated poses of every tracked body
func (m *Match) RenderPoses() []RenderPose {
	return m.scheduler.RenderPoses()
}

// Camera returns the smoothed player yaw and pitch
func (m *Match) Camera() (yaw, pitch float64) {
	return m.human.Angles()
}

// AIState returns the enemy state machine's current state
func (m *Match) AIState() string {
	return m.ai.State()
}
