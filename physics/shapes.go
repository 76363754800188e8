package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

type shapeKind int

const (
	shapeBall shapeKind = iota
	shapeCuboid
	shapeTrimesh
)

type triangle [3]mgl64.Vec3

type collider struct {
	handle ColliderHandle
	body   *body
	shape  shapeKind
	radius float64
	half   mgl64.Vec3
	tris   []triangle
	desc   ColliderDesc
	obj    *resolv.Object
}

type manifold struct {
	normal mgl64.Vec3 // toward the ball
	point  mgl64.Vec3
	depth  float64
}

// footprint returns the world-space X/Z bounds of the collider.
func (c *collider) footprint() (minX, minZ, maxX, maxZ float64) {
	p := c.body.pos
	switch c.shape {
	case shapeBall:
		return p.X() - c.radius, p.Z() - c.radius, p.X() + c.radius, p.Z() + c.radius
	case shapeCuboid:
		return p.X() - c.half.X(), p.Z() - c.half.Z(), p.X() + c.half.X(), p.Z() + c.half.Z()
	}
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)
	for _, t := range c.tris {
		for _, v := range t {
			minX = math.Min(minX, v.X())
			maxX = math.Max(maxX, v.X())
			minZ = math.Min(minZ, v.Z())
			maxZ = math.Max(maxZ, v.Z())
		}
	}
	if len(c.tris) == 0 {
		return p.X(), p.Z(), p.X(), p.Z()
	}
	return p.X() + minX, p.Z() + minZ, p.X() + maxX, p.Z() + maxZ
}

func (c *collider) massProperties() (mass, inertia float64) {
	switch c.shape {
	case shapeBall:
		mass = c.desc.Density * 4.0 / 3.0 * math.Pi * c.radius * c.radius * c.radius
		return mass, 0.4 * mass * c.radius * c.radius
	case shapeCuboid:
		h := c.half
		mass = c.desc.Density * 8 * h.X() * h.Y() * h.Z()
		return mass, mass * (h.X()*h.X() + h.Y()*h.Y() + h.Z()*h.Z()) * 2 / 9
	}
	return 0, 0
}

// collide tests ball a against b. Contacts inside the skin are reported
// with a negative depth.
func collide(a, b *collider, skin float64) (manifold, bool) {
	center := a.body.pos
	var closest mgl64.Vec3
	var fallback mgl64.Vec3
	reach := a.radius

	switch b.shape {
	case shapeBall:
		closest = b.body.pos
		reach += b.radius
		fallback = mgl64.Vec3{0, 1, 0}
	case shapeCuboid:
		lo := b.body.pos.Sub(b.half)
		hi := b.body.pos.Add(b.half)
		closest = mgl64.Vec3{
			clamp(center.X(), lo.X(), hi.X()),
			clamp(center.Y(), lo.Y(), hi.Y()),
			clamp(center.Z(), lo.Z(), hi.Z()),
		}
		if closest == center {
			return insideCuboid(center, a.radius, lo, hi), true
		}
	case shapeTrimesh:
		best := math.Inf(1)
		local := center.Sub(b.body.pos)
		for _, t := range b.tris {
			q := closestOnTriangle(local, t)
			if d := q.Sub(local).Len(); d < best {
				best = d
				closest = q.Add(b.body.pos)
				fallback = t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
			}
		}
		if math.IsInf(best, 1) {
			return manifold{}, false
		}
	}

	d := center.Sub(closest)
	dist := d.Len()
	if dist > reach+skin {
		return manifold{}, false
	}
	n := fallback
	if dist > 1e-9 {
		n = d.Mul(1 / dist)
	} else if n.Len() > 1e-9 {
		n = n.Normalize()
	} else {
		n = mgl64.Vec3{0, 1, 0}
	}
	point := closest
	if b.shape == shapeBall {
		point = closest.Add(n.Mul(b.radius))
	}
	return manifold{normal: n, point: point, depth: reach - dist}, true
}

// insideCuboid pushes a ball whose center is inside the box out of the
// nearest face.
func insideCuboid(center mgl64.Vec3, radius float64, lo, hi mgl64.Vec3) manifold {
	best := math.Inf(1)
	var n mgl64.Vec3
	var face mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		if d := center[axis] - lo[axis]; d < best {
			best = d
			n = mgl64.Vec3{}
			n[axis] = -1
			face = center
			face[axis] = lo[axis]
		}
		if d := hi[axis] - center[axis]; d < best {
			best = d
			n = mgl64.Vec3{}
			n[axis] = 1
			face = center
			face[axis] = hi[axis]
		}
	}
	return manifold{normal: n, point: face, depth: radius + best}
}

// closestOnTriangle returns the point of t nearest to p.
func closestOnTriangle(p mgl64.Vec3, t triangle) mgl64.Vec3 {
	a, b, c := t[0], t[1], t[2]
	ab, ac, ap := b.Sub(a), c.Sub(a), p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}
	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		return b.Add(c.Sub(b).Mul((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}
	denom := 1 / (va + vb + vc)
	return a.Add(ab.Mul(vb * denom)).Add(ac.Mul(vc * denom))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
