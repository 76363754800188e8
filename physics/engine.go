// Package physics is the rigid-body adapter the game core drives. The core
// only ever talks to the Engine interface; World is the in-process
// implementation used by the game and the tests.
package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyHandle identifies a rigid body. The zero handle means "no body".
type BodyHandle uint32

// ColliderHandle identifies a collider. The zero handle means "no collider".
type ColliderHandle uint32

// BodyType selects how a body is moved by the step.
type BodyType int

const (
	Dynamic   BodyType = iota // integrated from forces, impulses and gravity
	Kinematic                 // moved only by its own velocity or explicit transforms
	Fixed                     // never moves
)

// BodyDesc configures a dynamic body.
type BodyDesc struct {
	Position       mgl64.Vec3
	LinearDamping  float64
	AngularDamping float64
	CCD            bool
}

// ColliderDesc holds the material of a collider.
type ColliderDesc struct {
	Friction    float64
	Restitution float64
	Density     float64
}

// ContactPair is one touching collider pair as seen from Collider.
// Normal points from Other toward Collider.
type ContactPair struct {
	Collider ColliderHandle
	Other    ColliderHandle
	Normal   mgl64.Vec3
	Point    mgl64.Vec3
	Depth    float64 // negative while inside the contact skin but not overlapping
}

// Engine is the physics surface consumed by the game systems.
type Engine interface {
	Ready() bool

	CreateDynamicBody(desc BodyDesc) BodyHandle
	CreateKinematicBody(position mgl64.Vec3) BodyHandle
	CreateFixedBody(position mgl64.Vec3) BodyHandle
	CreateBallCollider(body BodyHandle, radius float64, desc ColliderDesc) ColliderHandle
	CreateCuboidCollider(body BodyHandle, halfExtents mgl64.Vec3, desc ColliderDesc) ColliderHandle
	CreateTrimeshCollider(body BodyHandle, vertices []mgl64.Vec3, indices [][3]int, desc ColliderDesc) ColliderHandle

	SetBodyType(body BodyHandle, t BodyType)
	BodyType(body BodyHandle) BodyType
	SetGravityScale(body BodyHandle, scale float64)
	GravityScale(body BodyHandle) float64
	Mass(body BodyHandle) float64

	ApplyImpulse(body BodyHandle, impulse mgl64.Vec3)
	ApplyTorqueImpulse(body BodyHandle, torque mgl64.Vec3)

	Translation(body BodyHandle) mgl64.Vec3
	SetTranslation(body BodyHandle, p mgl64.Vec3)
	Rotation(body BodyHandle) mgl64.Quat
	SetRotation(body BodyHandle, q mgl64.Quat)
	Linvel(body BodyHandle) mgl64.Vec3
	SetLinvel(body BodyHandle, v mgl64.Vec3)
	Angvel(body BodyHandle) mgl64.Vec3
	SetAngvel(body BodyHandle, w mgl64.Vec3)

	ForEachContactPair(collider ColliderHandle, fn func(ContactPair))
	Step(dt float64)
}
