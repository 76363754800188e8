package components

import (
	"github.com/automoto/ballglide/physics"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData holds the physics adapter (singleton component)
type PhysicsWorldData struct {
	Engine physics.Engine
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// BodyData references a rigid body owned by the physics adapter.
// A zero Handle means the body has not been created yet.
type BodyData struct {
	Handle   physics.BodyHandle
	Collider physics.ColliderHandle
}

var Body = donburi.NewComponentType[BodyData]()
