package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/swordfall/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. SWORDFALL_ENEMY_ATTACKRANGE
const EnvPrefix = "SWORDFALL"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	Log     Log     `mapstructure:"log"`
	Audio   Audio   `mapstructure:"audio"`
	Physics Physics `mapstructure:"physics"`
	Player  Player  `mapstructure:"player"`
	Enemy   Enemy   `mapstructure:"enemy"`
	Weapon  Weapon  `mapstructure:"weapon"`

	// Keys maps action names to key names, see input.KeyTable.Rebind
	Keys map[string]string `mapstructure:"keys"`
}

// Log controls the zerolog sink of the binary
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Audio controls the beep cue player
type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Physics holds world and scheduler settings
type Physics struct {
	Gravity          float64       `mapstructure:"gravity"`
	FixedStep        time.Duration `mapstructure:"fixedStep"`
	MaxStepsPerFrame int           `mapstructure:"maxStepsPerFrame"`
	FrameInterval    time.Duration `mapstructure:"frameInterval"`
}

// Player holds human-controlled combatant tuning
// Rates and costs are per second, speeds in m/s
type Player struct {
	MoveSpeed            float64 `mapstructure:"moveSpeed"`
	SprintSpeed          float64 `mapstructure:"sprintSpeed"`
	JumpVelocity         float64 `mapstructure:"jumpVelocity"`
	JumpProbe            float64 `mapstructure:"jumpProbe"`
	IdleDamping          float64 `mapstructure:"idleDamping"`
	CameraSmoothing      float64 `mapstructure:"cameraSmoothing"`
	LookSensitivity      float64 `mapstructure:"lookSensitivity"`
	EyeHeight            float64 `mapstructure:"eyeHeight"`
	MaxHealth            float64 `mapstructure:"maxHealth"`
	MaxStamina           float64 `mapstructure:"maxStamina"`
	StaminaRegen         float64 `mapstructure:"staminaRegen"`
	SprintCost           float64 `mapstructure:"sprintCost"`
	BlockCost            float64 `mapstructure:"blockCost"`
	JumpCost             float64 `mapstructure:"jumpCost"`
	KickCost             float64 `mapstructure:"kickCost"`
	KickForce            float64 `mapstructure:"kickForce"`
	KickRange            float64 `mapstructure:"kickRange"`
	Damage               float64 `mapstructure:"damage"`
	BlockDamageReduction float64 `mapstructure:"blockDamageReduction"`
}

// Enemy holds AI-controlled combatant tuning
type Enemy struct {
	MoveSpeed      float64       `mapstructure:"moveSpeed"`
	MaxHealth      float64       `mapstructure:"maxHealth"`
	AttackCooldown time.Duration `mapstructure:"attackCooldown"`
	AttackRange    float64       `mapstructure:"attackRange"`
	ChaseRange     float64       `mapstructure:"chaseRange"`
	Damage         float64       `mapstructure:"damage"`
	AttackDamping  float64       `mapstructure:"attackDamping"`
	AimHeight      float64       `mapstructure:"aimHeight"`
}

// Weapon holds blade follow, swing and impact tuning
type Weapon struct {
	ArmStrength       float64       `mapstructure:"armStrength"`
	GuardArmStrength  float64       `mapstructure:"guardArmStrength"`
	RotationSmoothing float64       `mapstructure:"rotationSmoothing"`
	AttackSpeed       float64       `mapstructure:"attackSpeed"`
	SwingDuration     time.Duration `mapstructure:"swingDuration"`
	ClashThreshold    float64       `mapstructure:"clashThreshold"`
	HitThreshold      float64       `mapstructure:"hitThreshold"`
	KnockbackForce    float64       `mapstructure:"knockbackForce"`
	DamageImmunity    time.Duration `mapstructure:"damageImmunity"`
	HitFlash          time.Duration `mapstructure:"hitFlash"`
	HitShake          time.Duration `mapstructure:"hitShake"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		Log:   Log{Level: "info", File: "swordfall.log"},
		Audio: Audio{Enabled: true, Volume: parameter.AudioVolume},
		Physics: Physics{
			Gravity:          parameter.Gravity,
			FixedStep:        parameter.FixedTimeStep,
			MaxStepsPerFrame: parameter.MaxStepsPerFrame,
			FrameInterval:    parameter.FrameUpdateInterval,
		},
		Player: Player{
			MoveSpeed:            parameter.PlayerMoveSpeed,
			SprintSpeed:          parameter.PlayerSprintSpeed,
			JumpVelocity:         parameter.PlayerJumpVelocity,
			JumpProbe:            parameter.PlayerJumpProbe,
			IdleDamping:          parameter.PlayerIdleDamping,
			CameraSmoothing:      parameter.PlayerCameraSmoothing,
			LookSensitivity:      parameter.PlayerLookSensitivity,
			EyeHeight:            parameter.PlayerEyeHeight,
			MaxHealth:            parameter.PlayerMaxHealth,
			MaxStamina:           parameter.PlayerMaxStamina,
			StaminaRegen:         parameter.PlayerStaminaRegen,
			SprintCost:           parameter.PlayerSprintCost,
			BlockCost:            parameter.PlayerBlockCost,
			JumpCost:             parameter.PlayerJumpCost,
			KickCost:             parameter.PlayerKickCost,
			KickForce:            parameter.PlayerKickForce,
			KickRange:            parameter.PlayerKickRange,
			Damage:               parameter.PlayerDamage,
			BlockDamageReduction: parameter.PlayerBlockDamageReduction,
		},
		Enemy: Enemy{
			MoveSpeed:      parameter.EnemyMoveSpeed,
			MaxHealth:      parameter.EnemyMaxHealth,
			AttackCooldown: parameter.EnemyAttackCooldown,
			AttackRange:    parameter.EnemyAttackRange,
			ChaseRange:     parameter.EnemyChaseRange,
			Damage:         parameter.EnemyDamage,
			AttackDamping:  parameter.EnemyAttackDamping,
			AimHeight:      parameter.EnemyAimHeight,
		},
		Weapon: Weapon{
			ArmStrength:       parameter.WeaponArmStrength,
			GuardArmStrength:  parameter.WeaponGuardArmStrength,
			RotationSmoothing: parameter.WeaponRotationSmoothing,
			AttackSpeed:       parameter.WeaponAttackSpeed,
			SwingDuration:     parameter.WeaponSwingDuration,
			ClashThreshold:    parameter.WeaponClashThreshold,
			HitThreshold:      parameter.WeaponHitThreshold,
			KnockbackForce:    parameter.KnockbackForce,
			DamageImmunity:    parameter.DamageImmunity,
			HitFlash:          parameter.HitFlash,
			HitShake:          parameter.HitShake,
		},
	}
}

// Load builds a Config from defaults, an optional config file and SWORDFALL_* environment overrides
// An empty path skips the file
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects tuning the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Physics.FixedStep <= 0:
		return fmt.Errorf("%w: physics.fixedStep must be positive", ErrInvalid)
	case c.Physics.MaxStepsPerFrame < 1:
		return fmt.Errorf("%w: physics.maxStepsPerFrame must be at least 1", ErrInvalid)
	case c.Physics.FrameInterval <= 0:
		return fmt.Errorf("%w: physics.frameInterval must be positive", ErrInvalid)
	case c.Weapon.ClashThreshold < 0 || c.Weapon.HitThreshold <= c.Weapon.ClashThreshold:
		return fmt.Errorf("%w: weapon thresholds must satisfy 0 <= clashThreshold < hitThreshold", ErrInvalid)
	case c.Enemy.AttackRange <= 0 || c.Enemy.AttackRange >= c.Enemy.ChaseRange:
		return fmt.Errorf("%w: enemy ranges must satisfy 0 < attackRange < chaseRange", ErrInvalid)
	case c.Player.BlockDamageReduction < 0 || c.Player.BlockDamageReduction > 1:
		return fmt.Errorf("%w: player.blockDamageReduction must be within [0,1]", ErrInvalid)
	case c.Player.MaxHealth <= 0 || c.Enemy.MaxHealth <= 0 || c.Player.MaxStamina <= 0:
		return fmt.Errorf("%w: maximum health and stamina must be positive", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0,1]", ErrInvalid)
	case c.Player.CameraSmoothing <= 0 || c.Player.CameraSmoothing > 1:
		return fmt.Errorf("%w: player.cameraSmoothing must be within (0,1]", ErrInvalid)
	case c.Weapon.RotationSmoothing <= 0 || c.Weapon.RotationSmoothing > 1:
		return fmt.Errorf("%w: weapon.rotationSmoothing must be within (0,1]", ErrInvalid)
	case c.Weapon.ArmStrength <= 0 || c.Weapon.GuardArmStrength <= c.Weapon.ArmStrength:
		return fmt.Errorf("%w: weapon arm strengths must satisfy 0 < armStrength < guardArmStrength", ErrInvalid)
	case c.Weapon.AttackSpeed <= 0:
		return fmt.Errorf("%w: weapon.attackSpeed must be positive", ErrInvalid)
	case c.Weapon.SwingDuration <= 0 || c.Weapon.SwingDuration > c.Enemy.AttackCooldown:
		return fmt.Errorf("%w: weapon.swingDuration must be within (0, enemy.attackCooldown]", ErrInvalid)
	case c.Weapon.HitFlash < 0 || c.Weapon.HitShake < 0 || c.Weapon.DamageImmunity < 0:
		return fmt.Errorf("%w: weapon hit timers must not be negative", ErrInvalid)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("physics.gravity", d.Physics.Gravity)
	v.SetDefault("physics.fixedStep", d.Physics.FixedStep)
	v.SetDefault("physics.maxStepsPerFrame", d.Physics.MaxStepsPerFrame)
	v.SetDefault("physics.frameInterval", d.Physics.FrameInterval)

	v.SetDefault("player.moveSpeed", d.Player.MoveSpeed)
	v.SetDefault("player.sprintSpeed", d.Player.SprintSpeed)
	v.SetDefault("player.jumpVelocity", d.Player.JumpVelocity)
	v.SetDefault("player.jumpProbe", d.Player.JumpProbe)
	v.SetDefault("player.idleDamping", d.Player.IdleDamping)
	v.SetDefault("player.cameraSmoothing", d.Player.CameraSmoothing)
	v.SetDefault("player.lookSensitivity", d.Player.LookSensitivity)
	v.SetDefault("player.eyeHeight", d.Player.EyeHeight)
	v.SetDefault("player.maxHealth", d.Player.MaxHealth)
	v.SetDefault("player.maxStamina", d.Player.MaxStamina)
	v.SetDefault("player.staminaRegen", d.Player.StaminaRegen)
	v.SetDefault("player.sprintCost", d.Player.SprintCost)
	v.SetDefault("player.blockCost", d.Player.BlockCost)
	v.SetDefault("player.jumpCost", d.Player.JumpCost)
	v.SetDefault("player.kickCost", d.Player.KickCost)
	v.SetDefault("player.kickForce", d.Player.KickForce)
	v.SetDefault("player.kickRange", d.Player.KickRange)
	v.SetDefault("player.damage", d.Player.Damage)
	v.SetDefault("player.blockDamageReduction", d.Player.BlockDamageReduction)

	v.SetDefault("enemy.moveSpeed", d.Enemy.MoveSpeed)
	v.SetDefault("enemy.maxHealth", d.Enemy.MaxHealth)
	v.SetDefault("enemy.attackCooldown", d.Enemy.AttackCooldown)
	v.SetDefault("enemy.attackRange", d.Enemy.AttackRange)
	v.SetDefault("enemy.chaseRange", d.Enemy.ChaseRange)
	v.SetDefault("enemy.damage", d.Enemy.Damage)
	v.SetDefault("enemy.attackDamping", d.Enemy.AttackDamping)
	v.SetDefault("enemy.aimHeight", d.Enemy.AimHeight)

	v.SetDefault("weapon.armStrength", d.Weapon.ArmStrength)
	v.SetDefault("weapon.guardArmStrength", d.Weapon.GuardArmStrength)
	v.SetDefault("weapon.rotationSmoothing", d.Weapon.RotationSmoothing)
	v.SetDefault("weapon.attackSpeed", d.Weapon.AttackSpeed)
	v.SetDefault("weapon.swingDuration", d.Weapon.SwingDuration)
	v.SetDefault("weapon.clashThreshold", d.Weapon.ClashThreshold)
	v.SetDefault("weapon.hitThreshold", d.Weapon.HitThreshold)
	v.SetDefault("weapon.knockbackForce", d.Weapon.KnockbackForce)
	v.SetDefault("weapon.damageImmunity", d.Weapon.DamageImmunity)
	v.SetDefault("weapon.hitFlash", d.Weapon.HitFlash)
	v.SetDefault("weapon.hitShake", d.Weapon.HitShake)
}
