package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/physics"
)

// Pose is a position and orientation in world space
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// PoseOf captures the current pose of a body
func PoseOf(b *physics.Body) Pose {
	return Pose{Position: b.Position, Orientation: b.Orientation}
}

// Apply teleports a body to the pose, leaving velocity untouched
func (p Pose) Apply(b *physics.Body) {
	b.Position = p.Position
	b.Orientation = p.Orientation
}
