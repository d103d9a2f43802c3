package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is one collision reported by a World step
// Normal points from B towards A; ImpactVelocity is (vA-vB)·Normal sampled
// before resolution, negative while the bodies approach
type Contact struct {
	A, B           *Body
	Normal         mgl64.Vec3
	Depth          float64
	ImpactVelocity float64
}

// Involves reports whether body is one side of the contact
func (c Contact) Involves(body *Body) bool {
	return c.A == body || c.B == body
}

// Other returns the side of the contact that is not body, nil if body is not involved
func (c Contact) Other(body *Body) *Body {
	switch body {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return nil
}
