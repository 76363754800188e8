package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ground material shared by the island and the sea floor
var groundMaterial = physics.ColliderDesc{Friction: 0.9, Restitution: 0.1}

// CreateSlab creates a fixed axis-aligned box spanning min..max.
func CreateSlab(ecs *ecs.ECS, engine physics.Engine, min, max mgl64.Vec3) *donburi.Entry {
	slab := archetypes.Terrain.Spawn(ecs)

	center := min.Add(max).Mul(0.5)
	half := max.Sub(min).Mul(0.5)
	body := engine.CreateFixedBody(center)
	collider := engine.CreateCuboidCollider(body, half, groundMaterial)

	components.Body.SetValue(slab, components.BodyData{Handle: body, Collider: collider})
	return slab
}
