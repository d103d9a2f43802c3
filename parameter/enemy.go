package parameter

import "time"

const (
	// EnemyMoveSpeed is the pursuit speed (m/s)
	EnemyMoveSpeed = 4.0

	EnemyMaxHealth = 100.0

	// EnemyAttackCooldown is the minimum time between swings
	EnemyAttackCooldown = 1500 * time.Millisecond

	// EnemyAttackRange is the distance at or below which the enemy stops and swings (m)
	EnemyAttackRange = 3.5

	// EnemyChaseRange is the distance below which the enemy actively closes in (m)
	EnemyChaseRange = 15.0

	// EnemyDamage is the base damage of an enemy blade hit
	EnemyDamage = 20.0

	// EnemyAttackDamping is the horizontal velocity decay rate while attacking (1/s)
	EnemyAttackDamping = 10.0

	// EnemyAimHeight is the height of the enemy's sword arm above its body center (m)
	EnemyAimHeight = 0.5
)
