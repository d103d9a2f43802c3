package component

import "fmt"

// Category is a collision category, each maps to one group bit
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryPlayerWeapon
	CategoryEnemyWeapon
	CategoryGround

	categoryCount
)

// Bit returns the group bit of the category
func (c Category) Bit() uint32 {
	return 1 << c
}

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayerWeapon:
		return "player_weapon"
	case CategoryEnemyWeapon:
		return "enemy_weapon"
	case CategoryGround:
		return "ground"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Categories returns every category in bit order
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Mode is the combatant variant
type Mode uint8

const (
	ModePlayer Mode = iota
	ModeEnemy
)

func (m Mode) String() string {
	switch m {
	case ModePlayer:
		return "player"
	case ModeEnemy:
		return "enemy"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// BodyCategory returns the collision category of the combatant body
func (m Mode) BodyCategory() Category {
	if m == ModeEnemy {
		return CategoryEnemy
	}
	return CategoryPlayer
}

// WeaponCategory returns the collision category of the combatant weapon
func (m Mode) WeaponCategory() Category {
	if m == ModeEnemy {
		return CategoryEnemyWeapon
	}
	return CategoryPlayerWeapon
}

// Opponent returns the other variant
func (m Mode) Opponent() Mode {
	if m == ModeEnemy {
		return ModePlayer
	}
	return ModeEnemy
}
