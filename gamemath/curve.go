package gamemath

import "math"

// Curve is the cubic launch profile y(x) = a·x³ + b·x² − x on [0, Length].
// It starts and ends at height zero, leaves x=0 with slope -1 and reaches
// x=Length with slope Shape.
type Curve struct {
	Length float64
	Shape  float64
	a, b   float64
}

func NewCurve(length, shape float64) Curve {
	return Curve{
		Length: length,
		Shape:  shape,
		a:      (shape - 1) / (length * length),
		b:      (2 - shape) / length,
	}
}

// Height returns y(x).
func (c Curve) Height(x float64) float64 {
	return c.a*x*x*x + c.b*x*x - x
}

// Slope returns y'(x).
func (c Curve) Slope(x float64) float64 {
	return 3*c.a*x*x + 2*c.b*x - 1
}

// Stretch returns √(1+y'²), the arc length per unit of x. Never below 1.
func (c Curve) Stretch(x float64) float64 {
	s := c.Slope(x)
	return math.Sqrt(1 + s*s)
}

// Tangent returns the unit tangent (along x, along y) at x.
func (c Curve) Tangent(x float64) (tx, ty float64) {
	k := c.Stretch(x)
	return 1 / k, c.Slope(x) / k
}

// Normal returns the unit surface normal (along x, along y) at x.
func (c Curve) Normal(x float64) (nx, ny float64) {
	k := c.Stretch(x)
	return -c.Slope(x) / k, 1 / k
}

// TangentialAccel is gravity projected on the tangent: -g·y'/√(1+y'²).
func (c Curve) TangentialAccel(x, g float64) float64 {
	return -g * c.Slope(x) / c.Stretch(x)
}

// Clamp limits x to the curve domain.
func (c Curve) Clamp(x float64) float64 {
	return ClampFloat(x, 0, c.Length)
}
