package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/parameter"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Second/60, cfg.Physics.FixedStep)
	assert.Equal(t, parameter.MaxStepsPerFrame, cfg.Physics.MaxStepsPerFrame)
	assert.Equal(t, 1.5, cfg.Weapon.ClashThreshold)
	assert.Equal(t, 4.0, cfg.Weapon.HitThreshold)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swordfall.toml")
	content := `
[physics]
fixedStep = "10ms"
maxStepsPerFrame = 3

[enemy]
attackRange = 2.0

[log]
level = "debug"

[keys]
jump = "j"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Physics.FixedStep)
	assert.Equal(t, 3, cfg.Physics.MaxStepsPerFrame)
	assert.Equal(t, 2.0, cfg.Enemy.AttackRange)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, map[string]string{"jump": "j"}, cfg.Keys)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.EnemyChaseRange, cfg.Enemy.ChaseRange)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SWORDFALL_WEAPON_HITTHRESHOLD", "6.5")
	t.Setenv("SWORDFALL_AUDIO_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 6.5, cfg.Weapon.HitThreshold)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SWORDFALL_WEAPON_CLASHTHRESHOLD", "5")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step", func(c *Config) { c.Physics.FixedStep = 0 }},
		{"no steps per frame", func(c *Config) { c.Physics.MaxStepsPerFrame = 0 }},
		{"zero frame interval", func(c *Config) { c.Physics.FrameInterval = 0 }},
		{"thresholds equal", func(c *Config) { c.Weapon.ClashThreshold = c.Weapon.HitThreshold }},
		{"negative clash", func(c *Config) { c.Weapon.ClashThreshold = -1 }},
		{"attack beyond chase", func(c *Config) { c.Enemy.AttackRange = c.Enemy.ChaseRange }},
		{"block reduction above one", func(c *Config) { c.Player.BlockDamageReduction = 1.2 }},
		{"zero health", func(c *Config) { c.Enemy.MaxHealth = 0 }},
		{"camera smoothing zero", func(c *Config) { c.Player.CameraSmoothing = 0 }},
		{"rotation smoothing above one", func(c *Config) { c.Weapon.RotationSmoothing = 2 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"guard arm not stiffer", func(c *Config) { c.Weapon.GuardArmStrength = c.Weapon.ArmStrength }},
		{"zero arm strength", func(c *Config) { c.Weapon.ArmStrength = 0 }},
		{"zero attack speed", func(c *Config) { c.Weapon.AttackSpeed = 0 }},
		{"zero swing", func(c *Config) { c.Weapon.SwingDuration = 0 }},
		{"negative shake", func(c *Config) { c.Weapon.HitShake = -time.Millisecond }},
		{"swing outlasts cooldown", func(c *Config) { c.Weapon.SwingDuration = c.Enemy.AttackCooldown + time.Millisecond }},
	}

	require.NoError(t, Default().Validate())

	// A swing lasting exactly the cooldown is allowed
	edge := Default()
	edge.Weapon.SwingDuration = edge.Enemy.AttackCooldown
	require.NoError(t, edge.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
