package gamemath

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothingFactor converts an exponential rate (1/s) into a per-step blend
// factor in [0, 1), independent of frame rate.
func SmoothingFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Approach moves current toward target by an exponential step.
func Approach(current, target, rate, dt float64) float64 {
	return current + (target-current)*SmoothingFactor(rate, dt)
}

// WrapAngle maps an angle to (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ApproachAngle is Approach along the shortest arc.
func ApproachAngle(current, target, rate, dt float64) float64 {
	delta := WrapAngle(target - current)
	return WrapAngle(current + delta*SmoothingFactor(rate, dt))
}
