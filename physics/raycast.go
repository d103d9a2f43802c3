package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/swordfall/vmath"
)

// RayOptions filters raycast candidates
type RayOptions struct {
	Mask uint32 // Body.Group bits to accept, zero accepts all
	Skip *Body  // Excluded body, typically the caster
}

// RayHit describes the closest intersection along a segment
type RayHit struct {
	Body     *Body
	Point    mgl64.Vec3
	Fraction float64 // Position along the segment in [0,1]
}

// RaycastClosest intersects the segment from→to with every accepted body
func (w *World) RaycastClosest(from, to mgl64.Vec3, opts RayOptions) (RayHit, bool) {
	dir := to.Sub(from)
	best := RayHit{Fraction: math.Inf(1)}

	for _, b := range w.bodies {
		if b == opts.Skip {
			continue
		}
		if opts.Mask != 0 && b.Group&opts.Mask == 0 {
			continue
		}

		var t float64
		var ok bool
		switch b.Shape {
		case ShapePlane:
			t, ok = rayPlane(from, dir, b.Position.Y())
		case ShapeBox:
			t, ok = rayBox(from, dir, b)
		}
		if ok && t < best.Fraction {
			best = RayHit{Body: b, Point: from.Add(dir.Mul(t)), Fraction: t}
		}
	}

	if best.Body == nil {
		return RayHit{}, false
	}
	return best, true
}

func rayPlane(from, dir mgl64.Vec3, y float64) (float64, bool) {
	if math.Abs(dir.Y()) < vmath.Epsilon {
		return 0, false
	}
	t := (y - from.Y()) / dir.Y()
	return t, t >= 0 && t <= 1
}

// rayBox is a slab test in the box's local frame
func rayBox(from, dir mgl64.Vec3, b *Body) (float64, bool) {
	axes := b.Axes()
	rel := from.Sub(b.Position)

	tMin, tMax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		origin := rel.Dot(axes[i])
		d := dir.Dot(axes[i])
		h := b.HalfExtents[i]

		if math.Abs(d) < vmath.Epsilon {
			if origin < -h || origin > h {
				return 0, false
			}
			continue
		}

		t1 := (-h - origin) / d
		t2 := (h - origin) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
