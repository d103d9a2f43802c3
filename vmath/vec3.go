package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// Lerp3 interpolates two positions component-wise
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Normalize returns the unit vector of v, or zero when v is degenerate
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal drops the vertical component
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalDir returns the unit XZ direction from one point to another and the XZ distance
func HorizontalDir(from, to mgl64.Vec3) (mgl64.Vec3, float64) {
	d := Horizontal(to.Sub(from))
	l := d.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, 0
	}
	return d.Mul(1 / l), l
}

// WithHorizontal replaces the XZ components of v and keeps its vertical component
func WithHorizontal(v, h mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{h.X(), v.Y(), h.Z()}
}

// DampHorizontal decays the XZ components of v at rate (1/sec) over dt
func DampHorizontal(v mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	k := DampFactor(rate, dt)
	return mgl64.Vec3{v.X() * k, v.Y(), v.Z() * k}
}

// Finite reports whether every component is a finite number
func Finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
