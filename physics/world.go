package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Settings configures a World.
type Settings struct {
	Gravity              float64 // magnitude along -Y
	ContactSkin          float64
	RestitutionThreshold float64
	MaxCCDSubsteps       int

	// Broad-phase grid over world X/Z. Colliders outside it never touch.
	OriginX, OriginZ float64
	Width, Depth     int
	CellSize         int
}

type body struct {
	handle       BodyHandle
	kind         BodyType
	pos          mgl64.Vec3
	rot          mgl64.Quat
	linvel       mgl64.Vec3
	angvel       mgl64.Vec3
	gravityScale float64
	linDamping   float64
	angDamping   float64
	ccd          bool
	mass         float64
	inertia      float64
	colliders    []*collider
}

func (b *body) invMass() float64 {
	if b.kind != Dynamic || b.mass <= 0 {
		return 0
	}
	return 1 / b.mass
}

func (b *body) invInertia() float64 {
	if b.kind != Dynamic || b.inertia <= 0 {
		return 0
	}
	return 1 / b.inertia
}

// World is a small fixed-step rigid-body world. Dynamic bodies collide
// through ball colliders; cuboids are axis aligned and trimeshes are static
// geometry in body-local coordinates.
type World struct {
	settings  Settings
	gravity   mgl64.Vec3
	bodies    []*body
	colliders []*collider
	space     *resolv.Space
	contacts  []ContactPair
	ready     bool
}

// NewWorld constructs an uninitialized world. Call Init before use; until
// then every operation is a no-op and creation returns zero handles.
func NewWorld(s Settings) *World {
	return &World{settings: s}
}

// Init allocates the broad-phase and marks the world ready.
func (w *World) Init() error {
	s := w.settings
	if s.Width <= 0 || s.Depth <= 0 || s.CellSize <= 0 {
		return fmt.Errorf("invalid broad-phase size %dx%d cell %d", s.Width, s.Depth, s.CellSize)
	}
	if s.Gravity < 0 {
		return errors.New("gravity magnitude must not be negative")
	}
	if w.settings.MaxCCDSubsteps < 1 {
		w.settings.MaxCCDSubsteps = 1
	}
	w.gravity = mgl64.Vec3{0, -s.Gravity, 0}
	w.space = resolv.NewSpace(s.Width, s.Depth, s.CellSize, s.CellSize)
	w.ready = true
	return nil
}

func (w *World) Ready() bool {
	return w.ready
}

func (w *World) get(h BodyHandle) *body {
	if h == 0 || int(h) > len(w.bodies) {
		return nil
	}
	return w.bodies[h-1]
}

func (w *World) newBody(kind BodyType, pos mgl64.Vec3) *body {
	b := &body{
		handle:       BodyHandle(len(w.bodies) + 1),
		kind:         kind,
		pos:          pos,
		rot:          mgl64.QuatIdent(),
		gravityScale: 1,
	}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) CreateDynamicBody(desc BodyDesc) BodyHandle {
	if !w.ready {
		return 0
	}
	b := w.newBody(Dynamic, desc.Position)
	b.linDamping = desc.LinearDamping
	b.angDamping = desc.AngularDamping
	b.ccd = desc.CCD
	return b.handle
}

func (w *World) CreateKinematicBody(position mgl64.Vec3) BodyHandle {
	if !w.ready {
		return 0
	}
	return w.newBody(Kinematic, position).handle
}

func (w *World) CreateFixedBody(position mgl64.Vec3) BodyHandle {
	if !w.ready {
		return 0
	}
	return w.newBody(Fixed, position).handle
}

func (w *World) CreateBallCollider(h BodyHandle, radius float64, desc ColliderDesc) ColliderHandle {
	return w.attach(h, &collider{shape: shapeBall, radius: radius, desc: desc})
}

func (w *World) CreateCuboidCollider(h BodyHandle, halfExtents mgl64.Vec3, desc ColliderDesc) ColliderHandle {
	return w.attach(h, &collider{shape: shapeCuboid, half: halfExtents, desc: desc})
}

func (w *World) CreateTrimeshCollider(h BodyHandle, vertices []mgl64.Vec3, indices [][3]int, desc ColliderDesc) ColliderHandle {
	tris := make([]triangle, 0, len(indices))
	for _, idx := range indices {
		if idx[0] >= len(vertices) || idx[1] >= len(vertices) || idx[2] >= len(vertices) {
			continue
		}
		tris = append(tris, triangle{vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]})
	}
	return w.attach(h, &collider{shape: shapeTrimesh, tris: tris, desc: desc})
}

func (w *World) attach(h BodyHandle, c *collider) ColliderHandle {
	b := w.get(h)
	if b == nil {
		return 0
	}
	c.handle = ColliderHandle(len(w.colliders) + 1)
	c.body = b
	w.colliders = append(w.colliders, c)
	b.colliders = append(b.colliders, c)

	minX, minZ, maxX, maxZ := c.footprint()
	c.obj = resolv.NewObject(minX-w.settings.OriginX, minZ-w.settings.OriginZ,
		math.Max(maxX-minX, 0.01), math.Max(maxZ-minZ, 0.01))
	c.obj.Data = c
	w.space.Add(c.obj)

	w.recomputeMass(b)
	return c.handle
}

func (w *World) recomputeMass(b *body) {
	b.mass, b.inertia = 0, 0
	for _, c := range b.colliders {
		m, i := c.massProperties()
		b.mass += m
		b.inertia += i
	}
}

func (w *World) SetBodyType(h BodyHandle, t BodyType) {
	if b := w.get(h); b != nil {
		b.kind = t
		if t == Fixed {
			b.linvel, b.angvel = mgl64.Vec3{}, mgl64.Vec3{}
		}
	}
}

func (w *World) BodyType(h BodyHandle) BodyType {
	if b := w.get(h); b != nil {
		return b.kind
	}
	return Fixed
}

func (w *World) SetGravityScale(h BodyHandle, scale float64) {
	if b := w.get(h); b != nil {
		b.gravityScale = scale
	}
}

func (w *World) GravityScale(h BodyHandle) float64 {
	if b := w.get(h); b != nil {
		return b.gravityScale
	}
	return 0
}

func (w *World) Mass(h BodyHandle) float64 {
	if b := w.get(h); b != nil {
		return b.mass
	}
	return 0
}

func (w *World) ApplyImpulse(h BodyHandle, impulse mgl64.Vec3) {
	if b := w.get(h); b != nil && b.kind == Dynamic {
		b.linvel = b.linvel.Add(impulse.Mul(b.invMass()))
	}
}

func (w *World) ApplyTorqueImpulse(h BodyHandle, torque mgl64.Vec3) {
	if b := w.get(h); b != nil && b.kind == Dynamic {
		b.angvel = b.angvel.Add(torque.Mul(b.invInertia()))
	}
}

func (w *World) Translation(h BodyHandle) mgl64.Vec3 {
	if b := w.get(h); b != nil {
		return b.pos
	}
	return mgl64.Vec3{}
}

func (w *World) SetTranslation(h BodyHandle, p mgl64.Vec3) {
	if b := w.get(h); b != nil {
		b.pos = p
		w.syncFootprint(b)
	}
}

func (w *World) Rotation(h BodyHandle) mgl64.Quat {
	if b := w.get(h); b != nil {
		return b.rot
	}
	return mgl64.QuatIdent()
}

func (w *World) SetRotation(h BodyHandle, q mgl64.Quat) {
	if b := w.get(h); b != nil {
		b.rot = q.Normalize()
	}
}

func (w *World) Linvel(h BodyHandle) mgl64.Vec3 {
	if b := w.get(h); b != nil {
		return b.linvel
	}
	return mgl64.Vec3{}
}

func (w *World) SetLinvel(h BodyHandle, v mgl64.Vec3) {
	if b := w.get(h); b != nil && b.kind != Fixed {
		b.linvel = v
	}
}

func (w *World) Angvel(h BodyHandle) mgl64.Vec3 {
	if b := w.get(h); b != nil {
		return b.angvel
	}
	return mgl64.Vec3{}
}

func (w *World) SetAngvel(h BodyHandle, v mgl64.Vec3) {
	if b := w.get(h); b != nil && b.kind != Fixed {
		b.angvel = v
	}
}

// ForEachContactPair calls fn for every contact recorded by the last Step
// that involves collider, with the normal oriented toward it.
func (w *World) ForEachContactPair(c ColliderHandle, fn func(ContactPair)) {
	for _, p := range w.contacts {
		switch c {
		case p.Collider:
			fn(p)
		case p.Other:
			fn(ContactPair{Collider: p.Other, Other: p.Collider, Normal: p.Normal.Mul(-1), Point: p.Point, Depth: p.Depth})
		}
	}
}

// Step advances every body by dt and rebuilds the contact list.
func (w *World) Step(dt float64) {
	if !w.ready || dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		switch b.kind {
		case Dynamic:
			n := w.substeps(b, dt)
			h := dt / float64(n)
			for i := 0; i < n; i++ {
				w.integrate(b, h)
				w.syncFootprint(b)
				w.solve(b, nil)
			}
		case Kinematic:
			b.pos = b.pos.Add(b.linvel.Mul(dt))
			b.rot = integrateRotation(b.rot, b.angvel, dt)
			w.syncFootprint(b)
		}
	}

	w.contacts = w.contacts[:0]
	for _, b := range w.bodies {
		if b.kind != Fixed {
			w.solve(b, &w.contacts)
		}
	}
}

// substeps splits fast CCD bodies so no step travels further than the
// smallest ball radius.
func (w *World) substeps(b *body, dt float64) int {
	if !b.ccd {
		return 1
	}
	r := math.Inf(1)
	for _, c := range b.colliders {
		if c.shape == shapeBall {
			r = math.Min(r, c.radius)
		}
	}
	if math.IsInf(r, 1) || r <= 0 {
		return 1
	}
	n := int(math.Ceil(b.linvel.Len() * dt / r))
	if n < 1 {
		n = 1
	}
	if n > w.settings.MaxCCDSubsteps {
		n = w.settings.MaxCCDSubsteps
	}
	return n
}

func (w *World) integrate(b *body, h float64) {
	b.linvel = b.linvel.Add(w.gravity.Mul(b.gravityScale * h))
	b.linvel = b.linvel.Mul(1 / (1 + b.linDamping*h))
	b.angvel = b.angvel.Mul(1 / (1 + b.angDamping*h))
	b.pos = b.pos.Add(b.linvel.Mul(h))
	b.rot = integrateRotation(b.rot, b.angvel, h)
}

func integrateRotation(q mgl64.Quat, w mgl64.Vec3, h float64) mgl64.Quat {
	if w.Len() == 0 {
		return q
	}
	dq := mgl64.Quat{W: 0, V: w}.Mul(q).Scale(0.5 * h)
	return q.Add(dq).Normalize()
}

func (w *World) syncFootprint(b *body) {
	for _, c := range b.colliders {
		minX, minZ, _, _ := c.footprint()
		c.obj.X = minX - w.settings.OriginX
		c.obj.Y = minZ - w.settings.OriginZ
		c.obj.Update()
	}
}

// solve resolves every ball collider of b against its broad-phase
// neighbours. When out is non-nil, contacts are recorded instead of
// only resolved.
func (w *World) solve(b *body, out *[]ContactPair) {
	for _, c := range b.colliders {
		if c.shape != shapeBall {
			continue
		}
		for _, other := range w.candidates(c) {
			if other.body == b {
				continue
			}
			if out != nil && other.shape == shapeBall && other.body.kind != Fixed && other.body.handle < b.handle {
				// The pair was already recorded from the other body.
				continue
			}
			m, ok := collide(c, other, w.settings.ContactSkin)
			if !ok {
				continue
			}
			if out != nil {
				*out = append(*out, ContactPair{Collider: c.handle, Other: other.handle, Normal: m.normal, Point: m.point, Depth: m.depth})
				continue
			}
			w.respond(c, other, m)
		}
	}
}

func (w *World) candidates(c *collider) []*collider {
	check := c.obj.Check(0, 0)
	if check == nil {
		return nil
	}
	found := make([]*collider, 0, len(check.Objects))
	for _, o := range check.Objects {
		if oc, ok := o.Data.(*collider); ok {
			found = append(found, oc)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].handle < found[j].handle })
	return found
}

// respond applies positional correction plus normal and friction impulses.
func (w *World) respond(a, b *collider, m manifold) {
	ba, bb := a.body, b.body
	invMa, invMb := ba.invMass(), bb.invMass()
	if invMa+invMb == 0 {
		return
	}
	if m.depth > 0 {
		share := m.depth / (invMa + invMb)
		ba.pos = ba.pos.Add(m.normal.Mul(share * invMa))
		bb.pos = bb.pos.Sub(m.normal.Mul(share * invMb))
	}

	invIa, invIb := ba.invInertia(), bb.invInertia()
	ra := m.point.Sub(ba.pos)
	rb := m.point.Sub(bb.pos)
	relVel := func() mgl64.Vec3 {
		va := ba.linvel.Add(ba.angvel.Cross(ra))
		vb := bb.linvel.Add(bb.angvel.Cross(rb))
		return va.Sub(vb)
	}
	effective := func(dir mgl64.Vec3) float64 {
		ca, cb := ra.Cross(dir), rb.Cross(dir)
		return invMa + invMb + invIa*ca.Dot(ca) + invIb*cb.Dot(cb)
	}
	apply := func(j mgl64.Vec3) {
		ba.linvel = ba.linvel.Add(j.Mul(invMa))
		ba.angvel = ba.angvel.Add(ra.Cross(j).Mul(invIa))
		bb.linvel = bb.linvel.Sub(j.Mul(invMb))
		bb.angvel = bb.angvel.Sub(rb.Cross(j).Mul(invIb))
	}

	vn := relVel().Dot(m.normal)
	if vn >= 0 {
		return
	}
	e := (a.desc.Restitution + b.desc.Restitution) / 2
	if -vn < w.settings.RestitutionThreshold {
		e = 0
	}
	jn := -(1 + e) * vn / effective(m.normal)
	apply(m.normal.Mul(jn))

	v := relVel()
	vt := v.Sub(m.normal.Mul(v.Dot(m.normal)))
	speed := vt.Len()
	if speed < 1e-9 {
		return
	}
	t := vt.Mul(1 / speed)
	jt := speed / effective(t)
	mu := math.Sqrt(math.Max(a.desc.Friction, 0) * math.Max(b.desc.Friction, 0))
	jt = math.Min(jt, mu*jn)
	apply(t.Mul(-jt))
}
