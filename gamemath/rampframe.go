package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Fixed-point iterations of ProjectBall. Each one shrinks the error by the
// ball radius times the curvature, which is far below one on any sane ramp.
const projectIterations = 16

// RampFrame places a Curve in the world. The curve lives in the plane
// spanned by Forward and Up; Lateral is the out-of-plane axis.
type RampFrame struct {
	Curve   Curve
	Origin  mgl64.Vec3
	Forward mgl64.Vec3
	Lateral mgl64.Vec3
}

func NewRampFrame(origin mgl64.Vec3, yaw, length, shape float64) RampFrame {
	forward := HeadingDir(yaw)
	return RampFrame{
		Curve:   NewCurve(length, shape),
		Origin:  origin,
		Forward: forward,
		Lateral: RightOf(forward),
	}
}

// Tangent returns the world-space unit tangent at progress x.
func (f RampFrame) Tangent(x float64) mgl64.Vec3 {
	tx, ty := f.Curve.Tangent(x)
	return f.Forward.Mul(tx).Add(Up.Mul(ty))
}

// Normal returns the world-space unit surface normal at progress x.
func (f RampFrame) Normal(x float64) mgl64.Vec3 {
	nx, ny := f.Curve.Normal(x)
	return f.Forward.Mul(nx).Add(Up.Mul(ny))
}

// Surface returns the world point on the curve at progress x and lateral offset.
func (f RampFrame) Surface(x, lateral float64) mgl64.Vec3 {
	return f.Origin.
		Add(f.Forward.Mul(x)).
		Add(Up.Mul(f.Curve.Height(x))).
		Add(f.Lateral.Mul(lateral))
}

// Position returns where a ball of the given radius rests at (x, lateral).
func (f RampFrame) Position(x, lateral, radius float64) mgl64.Vec3 {
	return f.Surface(x, lateral).Add(f.Normal(x).Mul(radius))
}

// Velocity combines tangential arc speed and lateral velocity at x.
func (f RampFrame) Velocity(x, arcSpeed, lateralVelocity float64) mgl64.Vec3 {
	return f.Tangent(x).Mul(arcSpeed).Add(f.Lateral.Mul(lateralVelocity))
}

// Project returns the unclamped progress and the lateral offset of p.
func (f RampFrame) Project(p mgl64.Vec3) (x, lateral float64) {
	d := p.Sub(f.Origin)
	return d.Dot(f.Forward), d.Dot(f.Lateral)
}

// ProjectBall returns the clamped progress whose resting position for a
// ball of the given radius lies under the center p, and the lateral offset
// of p. A ball already resting on the curve projects onto itself.
func (f RampFrame) ProjectBall(p mgl64.Vec3, radius float64) (x, lateral float64) {
	along, lateral := f.Project(p)
	x = f.Curve.Clamp(along)
	for i := 0; i < projectIterations; i++ {
		nx, _ := f.Curve.Normal(x)
		next := f.Curve.Clamp(along - radius*nx)
		done := math.Abs(next-x) < 1e-13
		x = next
		if done {
			break
		}
	}
	return x, lateral
}

// Mesh triangulates the ramp surface as a strip of segments quads.
func (f RampFrame) Mesh(segments int, halfWidth float64) ([]mgl64.Vec3, [][3]int) {
	if segments < 1 {
		segments = 1
	}
	vertices := make([]mgl64.Vec3, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		x := f.Curve.Length * float64(i) / float64(segments)
		vertices = append(vertices, f.Surface(x, -halfWidth), f.Surface(x, halfWidth))
	}
	indices := make([][3]int, 0, 2*segments)
	for i := 0; i < segments; i++ {
		a, b := 2*i, 2*i+1
		c, d := 2*i+2, 2*i+3
		indices = append(indices, [3]int{a, b, c}, [3]int{b, d, c})
	}
	return vertices, indices
}
