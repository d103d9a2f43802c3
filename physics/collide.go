package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/vmath"
)

// collide runs the narrow phase for an ordered pair
// Returned normal points from b towards a
func collide(a, b *Body) (normal mgl64.Vec3, depth float64, ok bool) {
	switch {
	case a.Shape == ShapeBox && b.Shape == ShapeBox:
		return boxBox(a, b)
	case a.Shape == ShapeBox && b.Shape == ShapePlane:
		return boxPlane(a, b)
	case a.Shape == ShapePlane && b.Shape == ShapeBox:
		normal, depth, ok = boxPlane(b, a)
		return normal.Mul(-1), depth, ok
	}
	return mgl64.Vec3{}, 0, false
}

// boxPlane tests an oriented box against a horizontal plane
func boxPlane(box, plane *Body) (mgl64.Vec3, float64, bool) {
	axes := box.Axes()

	// Half-length of the box projected on the plane normal
	var radius float64
	for i := 0; i < 3; i++ {
		radius += math.Abs(axes[i].Dot(vmath.Up)) * box.HalfExtents[i]
	}

	depth := radius - (box.Position.Y() - plane.Position.Y())
	if depth <= 0 {
		return mgl64.Vec3{}, 0, false
	}
	return vmath.Up, depth, true
}

// boxBox is a separating axis test over the 15 OBB candidate axes
// Axis of minimum overlap becomes the contact normal
func boxBox(a, b *Body) (mgl64.Vec3, float64, bool) {
	axesA := a.Axes()
	axesB := b.Axes()
	L := b.Position.Sub(a.Position)

	var testAxes [15]mgl64.Vec3
	n := 0
	for i := 0; i < 3; i++ {
		testAxes[n] = axesA[i]
		testAxes[n+1] = axesB[i]
		n += 2
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cross := axesA[i].Cross(axesB[j])
			// Parallel edges produce a degenerate axis already covered by face axes
			if cross.LenSqr() > 1e-8 {
				testAxes[n] = cross.Normalize()
				n++
			}
		}
	}

	minOverlap := math.MaxFloat64
	var normal mgl64.Vec3
	for _, axis := range testAxes[:n] {
		overlap := projectedOverlap(a, b, axesA, axesB, axis, L)
		if overlap <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		if overlap < minOverlap {
			minOverlap = overlap
			normal = axis
		}
	}

	if L.Dot(normal) > 0 {
		normal = normal.Mul(-1)
	}
	return normal, minOverlap, true
}

func projectedOverlap(a, b *Body, axesA, axesB [3]mgl64.Vec3, axis, L mgl64.Vec3) float64 {
	var projA, projB float64
	for i := 0; i < 3; i++ {
		projA += math.Abs(axesA[i].Dot(axis)) * a.HalfExtents[i]
		projB += math.Abs(axesB[i].Dot(axis)) * b.HalfExtents[i]
	}
	return projA + projB - math.Abs(L.Dot(axis))
}
