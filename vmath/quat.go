package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward is the local facing axis of every body and camera (-Z)
var Forward = mgl64.Vec3{0, 0, -1}

// Right is the local pitch axis
var Right = mgl64.Vec3{1, 0, 0}

// YawQuat returns a rotation of yaw radians about the vertical axis
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// YawPitchQuat composes a first-person orientation: yaw about world up, then pitch about local right
func YawPitchQuat(yaw, pitch float64) mgl64.Quat {
	return YawQuat(yaw).Mul(mgl64.QuatRotate(pitch, Right)).Normalize()
}

// FacingYaw returns the yaw that turns Forward onto the XZ projection of dir
func FacingYaw(dir mgl64.Vec3) float64 {
	return math.Atan2(-dir.X(), -dir.Z())
}

// Slerp interpolates orientations along the shortest arc
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

// SameRotation reports whether two quaternions describe the same rotation within tol
func SameRotation(a, b mgl64.Quat, tol float64) bool {
	return 1-math.Abs(a.Normalize().Dot(b.Normalize())) <= tol
}
