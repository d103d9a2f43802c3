package parameter

// World
const (
	// Gravity is the vertical acceleration (m/s², negative is down)
	Gravity = -18.0

	// GroundHeight is the Y of the arena floor plane
	GroundHeight = 0.0

	// ArenaHalfSize is the half extent of the square arena floor (m), used for framing only
	ArenaHalfSize = 20.0
)

// Bodies
const (
	// CombatantMass is the mass of a fighter's body (kg)
	CombatantMass = 70.0

	// CombatantHalfWidth is the half extent of a fighter's box on X and Z (m)
	CombatantHalfWidth = 0.5

	// CombatantHalfHeight is the half extent of a fighter's box on Y (m)
	CombatantHalfHeight = 1.0

	// WeaponMass is the mass of a blade body (kg)
	WeaponMass = 1.0

	// WeaponHalfThickness is the half extent of a blade on X and Y (m)
	WeaponHalfThickness = 0.05

	// WeaponHalfLength is the half extent of a blade along its local forward axis (m)
	WeaponHalfLength = 0.9

	// Restitution is the bounce coefficient used for every contact
	Restitution = 0.0
)

// Spawn points (world space, m)
const (
	PlayerSpawnX = 0.0
	PlayerSpawnY = 2.0
	PlayerSpawnZ = 8.0

	EnemySpawnX = 0.0
	EnemySpawnY = 2.0
	EnemySpawnZ = 0.0
)
