package system

import (
	"context"
	"time"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/vmath"
)

// AI states and transition events
const (
	StatePursuing  = "pursuing"
	StateAttacking = "attacking"

	eventEngage    = "engage"
	eventDisengage = "disengage"
)

// AIControl drives the enemy combatant with a two-state machine
// pursuing: close distance while within chase range
// attacking: hold position and swing whenever the cooldown has elapsed
type AIControl struct {
	cfg     config.Enemy
	weapons *WeaponController
	logger  zerolog.Logger

	machine  *fsm.FSM
	cooldown time.Duration
}

func NewAIControl(cfg config.Enemy, weapons *WeaponController, logger zerolog.Logger) *AIControl {
	a := &AIControl{
		cfg:      cfg,
		weapons:  weapons,
		logger:   logger,
		cooldown: cfg.AttackCooldown,
	}

	a.machine = fsm.NewFSM(
		StatePursuing,
		fsm.Events{
			{Name: eventEngage, Src: []string{StatePursuing}, Dst: StateAttacking},
			{Name: eventDisengage, Src: []string{StateAttacking}, Dst: StatePursuing},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				a.logger.Debug().Str("from", e.Src).Str("to", e.Dst).Msg("enemy state")
			},
		},
	)
	return a
}

// State returns the current machine state
func (a *AIControl) State() string {
	return a.machine.Current()
}

// Cooldown returns the time left before the next swing is allowed
func (a *AIControl) Cooldown() time.Duration {
	return a.cooldown
}

// Update runs one frame of AI
func (a *AIControl) Update(self *component.Combatant, env component.Env, dt time.Duration) {
	opp := env.Opponent(self)
	if opp == nil {
		return
	}

	a.cooldown -= dt
	if a.cooldown < 0 {
		a.cooldown = 0
	}

	distance := opp.Body.Position.Sub(self.Body.Position).Len()
	dir, _ := vmath.HorizontalDir(self.Body.Position, opp.Body.Position)

	// Boundary favours attack
	if distance <= a.cfg.AttackRange {
		a.fire(eventEngage)
	} else {
		a.fire(eventDisengage)
	}

	body := self.Body
	sec := dt.Seconds()
	switch a.machine.Current() {
	case StatePursuing:
		if distance < a.cfg.ChaseRange {
			body.Velocity = vmath.WithHorizontal(body.Velocity, dir.Mul(a.cfg.MoveSpeed))
		} else {
			body.Velocity = vmath.DampHorizontal(body.Velocity, a.cfg.AttackDamping, sec)
		}
	case StateAttacking:
		body.Velocity = vmath.DampHorizontal(body.Velocity, a.cfg.AttackDamping, sec)
		// One swing in flight at a time
		if a.cooldown <= 0 && !self.Weapon.Swinging() {
			a.weapons.Attack(self.Weapon, self.Weapon.Body.Position, opp.Body.Position)
			a.cooldown = a.cfg.AttackCooldown
		}
	}

	if dir.LenSqr() > 0 {
		body.Orientation = vmath.YawQuat(vmath.FacingYaw(dir))
	}

	a.weapons.Update(self.Weapon, a.Aim(self), false)
}

// Aim returns the sword-arm pose the weapon follows
func (a *AIControl) Aim(self *component.Combatant) component.Pose {
	return component.Pose{
		Position:    self.Body.Position.Add(vmath.Up.Mul(a.cfg.AimHeight)),
		Orientation: self.Body.Orientation,
	}
}

// Reset returns to pursuit with a full cooldown
func (a *AIControl) Reset(self *component.Combatant) {
	a.machine.SetState(StatePursuing)
	a.cooldown = a.cfg.AttackCooldown
	self.Guarding = false
}

func (a *AIControl) fire(name string) {
	if !a.machine.Can(name) {
		return
	}
	if err := a.machine.Event(context.Background(), name); err != nil {
		a.logger.Warn().Err(err).Str("event", name).Msg("enemy transition failed")
	}
}
