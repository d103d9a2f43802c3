package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Shape selects the narrow-phase representation of a body
type Shape uint8

const (
	// ShapeBox is an oriented box described by HalfExtents
	ShapeBox Shape = iota
	// ShapePlane is an infinite horizontal plane at Position.Y(), facing +Y
	ShapePlane
)

// Body is a rigid body owned by a World
// Mass 0 marks a static body: never integrated, never moved by resolution
type Body struct {
	ID    uint32
	Label string
	Shape Shape

	HalfExtents mgl64.Vec3
	Mass        float64

	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	GravityScale  float64
	FixedRotation bool // AngularVelocity is ignored, orientation changes only when set directly

	Group uint32 // Category bits this body belongs to
	Mask  uint32 // Category bits this body accepts contacts from

	Restitution float64
	Monitor     bool // Contacts involving this body are queued
}

// NewBox creates a dynamic box body with identity orientation and full gravity
func NewBox(label string, halfExtents mgl64.Vec3, mass float64, position mgl64.Vec3) *Body {
	return &Body{
		Label:        label,
		Shape:        ShapeBox,
		HalfExtents:  halfExtents,
		Mass:         mass,
		Position:     position,
		Orientation:  mgl64.QuatIdent(),
		GravityScale: 1,
	}
}

// NewPlane creates a static ground plane at height y
func NewPlane(label string, y float64) *Body {
	return &Body{
		Label:       label,
		Shape:       ShapePlane,
		Position:    mgl64.Vec3{0, y, 0},
		Orientation: mgl64.QuatIdent(),
	}
}

// Static reports whether the body is immovable
func (b *Body) Static() bool {
	return b.Mass <= 0
}

// InvMass returns 1/mass, zero for static bodies
func (b *Body) InvMass() float64 {
	if b.Static() {
		return 0
	}
	return 1 / b.Mass
}

// ApplyImpulse changes velocity by impulse/mass, no-op on static bodies
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / b.Mass))
}

// CanCollide applies the two-way group/mask filter
func (b *Body) CanCollide(other *Body) bool {
	return b.Group&other.Mask != 0 && other.Group&b.Mask != 0
}

// Axes returns the body's local x, y, z axes in world space
func (b *Body) Axes() [3]mgl64.Vec3 {
	rot := b.Orientation.Mat4()
	return [3]mgl64.Vec3{
		rot.Col(0).Vec3(),
		rot.Col(1).Vec3(),
		rot.Col(2).Vec3(),
	}
}
