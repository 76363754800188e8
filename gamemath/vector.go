package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinDirection is the smallest vector length still trusted as a direction.
const MinDirection = 1e-4

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Flatten drops the vertical component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize returns v normalized, or fallback when v is too short to
// carry a direction. The bool reports whether v itself was used.
func SafeNormalize(v, fallback mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < MinDirection {
		return fallback, false
	}
	return v.Mul(1 / l), true
}

// HeadingDir returns the horizontal unit vector for a heading angle.
// Heading 0 faces +X and heading π/2 faces +Z.
func HeadingDir(heading float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(heading), 0, math.Sin(heading)}
}

// HeadingOf returns the heading angle of v's horizontal component and false
// when that component is shorter than minLen.
func HeadingOf(v mgl64.Vec3, minLen float64) (float64, bool) {
	h := Flatten(v)
	if h.Len() < math.Max(minLen, MinDirection) {
		return 0, false
	}
	return math.Atan2(h.Z(), h.X()), true
}

// RightOf returns the horizontal right-hand axis for a horizontal forward.
func RightOf(forward mgl64.Vec3) mgl64.Vec3 {
	return forward.Cross(Up)
}
