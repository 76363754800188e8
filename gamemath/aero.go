package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FlightPathAngle returns the climb angle of v: atan2(vertical, horizontal speed).
func FlightPathAngle(v mgl64.Vec3) float64 {
	return math.Atan2(v.Y(), Flatten(v).Len())
}

// AngleOfAttack returns pitch minus the flight path angle, clamped to ±max.
func AngleOfAttack(pitch float64, v mgl64.Vec3, max float64) float64 {
	return ClampFloat(pitch-FlightPathAngle(v), -max, max)
}

// LiftCoefficient is linear (2π·α) up to the stall angle and decays
// exponentially past it. The result is clamped to ±maxCL.
func LiftCoefficient(alpha, stallAngle, decay, maxCL float64) float64 {
	abs := math.Abs(alpha)
	var cl float64
	if abs <= stallAngle {
		cl = 2 * math.Pi * abs
	} else {
		peak := 2 * math.Pi * stallAngle
		cl = peak * math.Exp(-decay*(abs-stallAngle))
	}
	cl = math.Min(cl, maxCL)
	if alpha < 0 {
		return -cl
	}
	return cl
}

// DragCoefficient is the parabolic polar CD0 + k·CL².
func DragCoefficient(cl, cd0, k float64) float64 {
	return cd0 + k*cl*cl
}

// DynamicPressure returns ½ρv².
func DynamicPressure(rho, speed float64) float64 {
	return 0.5 * rho * speed * speed
}

// StallBlend ramps lift in from 0 at minSpeed to 1 at stallSpeed.
func StallBlend(speed, minSpeed, stallSpeed float64) float64 {
	if speed <= minSpeed {
		return 0
	}
	if speed >= stallSpeed || stallSpeed <= minSpeed {
		return 1
	}
	return (speed - minSpeed) / (stallSpeed - minSpeed)
}

// LiftDirection returns the unit vector perpendicular to v in the plane of
// v and world up, rotated about v by roll. Positive roll banks toward the
// right of travel. The bool is false when v carries no usable direction.
func LiftDirection(v mgl64.Vec3, roll float64) (mgl64.Vec3, bool) {
	dir, ok := SafeNormalize(v, mgl64.Vec3{})
	if !ok {
		return mgl64.Vec3{}, false
	}
	perp := Up.Sub(dir.Mul(dir.Dot(Up)))
	perp, ok = SafeNormalize(perp, mgl64.Vec3{})
	if !ok {
		// Travelling straight up or down: lift has no preferred plane.
		return mgl64.Vec3{}, false
	}
	return mgl64.QuatRotate(roll, dir).Rotate(perp), true
}

// Attitude builds a body orientation from yaw (heading), pitch and roll.
func Attitude(yaw, pitch, roll float64) mgl64.Quat {
	forward := HeadingDir(yaw)
	right := RightOf(forward)
	qYaw := mgl64.QuatRotate(-yaw, Up)
	qPitch := mgl64.QuatRotate(pitch, right)
	qRoll := mgl64.QuatRotate(roll, qPitch.Rotate(forward))
	return qRoll.Mul(qPitch).Mul(qYaw)
}
