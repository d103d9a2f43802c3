package parameter

import "time"

// Spring follow
const (
	// WeaponArmStrength is the proportional gain of the blade follow law while idle or attacking
	WeaponArmStrength = 60.0

	// WeaponGuardArmStrength is the stiffer gain used while guarding
	WeaponGuardArmStrength = 120.0

	// WeaponRotationSmoothing is the per-update slerp fraction toward the aim orientation
	WeaponRotationSmoothing = 0.2
)

// Local offsets from the wielder's aim pose (m, aim-local frame, forward is -Z)
const (
	WeaponNeutralOffsetX = 0.5
	WeaponNeutralOffsetY = -0.4
	WeaponNeutralOffsetZ = -1.5

	WeaponGuardOffsetX = 0.3
	WeaponGuardOffsetY = -0.1
	WeaponGuardOffsetZ = -1.2

	// EnemyWeaponOffsetZ places the enemy blade straight ahead of its sword arm
	EnemyWeaponOffsetZ = -1.0
)

// Discrete swing
const (
	// WeaponAttackSpeed is the blade speed of an AI swing (m/s)
	WeaponAttackSpeed = 12.0

	// WeaponSwingDuration is how long a swing overrides the follow law
	WeaponSwingDuration = 300 * time.Millisecond
)

// Impact classification, compared against |impact velocity along normal| with strict >
const (
	// WeaponClashThreshold separates incidental contact from a clash (m/s)
	WeaponClashThreshold = 1.5

	// WeaponHitThreshold separates a clash from a damaging hit (m/s)
	WeaponHitThreshold = 4.0
)

// Hit response
const (
	// KnockbackForce is the impulse applied to a struck body (N·s)
	KnockbackForce = 150.0

	// DamageImmunity is the window after a landed hit during which further hits are ignored
	DamageImmunity = 250 * time.Millisecond

	// HitFlash is the duration of the struck-body flash
	HitFlash = 100 * time.Millisecond

	// HitShake is how long the arena view jitters after the player is struck
	HitShake = 150 * time.Millisecond
)
