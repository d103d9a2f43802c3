package vmath

import "math"

// Epsilon is the length below which a vector is treated as zero
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves current toward target by a fixed fraction of the remaining gap
// Fraction is applied per call, not per second
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

// DampFactor returns the linear decay multiplier for rate (1/sec) over dt seconds
// Linear approximation valid for dt << 1/rate, floored at 0
func DampFactor(rate, dt float64) float64 {
	return math.Max(0, 1-rate*dt)
}
