package system

import (
	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/physics"
)

// collidesWith is the static layer policy
// A weapon never meets its own wielder, a fighter never meets its own weapon
var collidesWith = map[component.Category][]component.Category{
	component.CategoryGround: {
		component.CategoryPlayer,
		component.CategoryEnemy,
		component.CategoryPlayerWeapon,
		component.CategoryEnemyWeapon,
	},
	component.CategoryPlayer: {
		component.CategoryGround,
		component.CategoryEnemy,
		component.CategoryEnemyWeapon,
	},
	component.CategoryEnemy: {
		component.CategoryGround,
		component.CategoryPlayer,
		component.CategoryPlayerWeapon,
	},
	component.CategoryPlayerWeapon: {
		component.CategoryGround,
		component.CategoryEnemy,
		component.CategoryEnemyWeapon,
	},
	component.CategoryEnemyWeapon: {
		component.CategoryGround,
		component.CategoryPlayer,
		component.CategoryPlayerWeapon,
	},
}

// CollisionFilter returns the group and mask bits for a category
func CollisionFilter(c component.Category) (group, mask uint32) {
	for _, other := range collidesWith[c] {
		mask |= other.Bit()
	}
	return c.Bit(), mask
}

// ApplyFilter configures a body for its category
func ApplyFilter(b *physics.Body, c component.Category) {
	b.Group, b.Mask = CollisionFilter(c)
}
