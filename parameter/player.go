package parameter

// Player locomotion
const (
	// PlayerMoveSpeed is the walking speed (m/s)
	PlayerMoveSpeed = 5.0

	// PlayerSprintSpeed is the sprinting speed (m/s)
	PlayerSprintSpeed = 8.0

	// PlayerJumpVelocity is the vertical velocity injected on jump (m/s)
	PlayerJumpVelocity = 7.0

	// PlayerJumpProbe is the length of the downward grounded ray from the body center (m)
	PlayerJumpProbe = 1.1

	// PlayerIdleDamping is the horizontal velocity decay rate without movement input (1/s)
	PlayerIdleDamping = 8.0
)

// Player aim
const (
	// PlayerCameraSmoothing is the per-frame fraction the camera closes toward the target orientation
	PlayerCameraSmoothing = 0.1

	// PlayerLookSensitivity converts look-delta pixels to radians
	PlayerLookSensitivity = 0.002

	// PlayerEyeHeight is the camera height above the body center (m)
	PlayerEyeHeight = 1.8
)

// Player vitals
const (
	PlayerMaxHealth  = 100.0
	PlayerMaxStamina = 100.0

	// PlayerStaminaRegen is stamina regained per second when neither sprinting nor guarding
	PlayerStaminaRegen = 20.0

	// PlayerSprintCost is stamina drained per second while sprinting
	PlayerSprintCost = 30.0

	// PlayerBlockCost is stamina drained per second while guarding
	PlayerBlockCost = 60.0

	// PlayerJumpCost is stamina spent per successful jump
	PlayerJumpCost = 10.0

	// PlayerKickCost is stamina spent per kick attempt
	PlayerKickCost = 25.0
)

// Player offense and defense
const (
	// PlayerKickForce is the impulse applied to the opponent by a connected kick (N·s)
	PlayerKickForce = 600.0

	// PlayerKickRange is the maximum center distance for a kick to connect (m)
	PlayerKickRange = 2.5

	// PlayerDamage is the base damage of a player blade hit
	PlayerDamage = 20.0

	// PlayerBlockDamageReduction is the fraction of incoming damage removed while guarding
	PlayerBlockDamageReduction = 0.8
)
