package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RampFrame returns the configured ramp placed in the world.
func RampFrame() gamemath.RampFrame {
	return gamemath.NewRampFrame(cfg.Ramp.Origin, cfg.Ramp.Yaw, cfg.Ramp.Length, cfg.Ramp.Shape)
}

// CreateRamp builds the ramp surface as a fixed trimesh following the curve,
// so the ball can also roll on it outside the constrained phase.
func CreateRamp(ecs *ecs.ECS, engine physics.Engine) *donburi.Entry {
	ramp := archetypes.Terrain.Spawn(ecs)

	vertices, indices := RampFrame().Mesh(cfg.Ramp.MeshSegments, cfg.Ramp.HalfWidth)
	body := engine.CreateFixedBody(mgl64.Vec3{})
	collider := engine.CreateTrimeshCollider(body, vertices, indices, physics.ColliderDesc{
		Friction:    0.6,
		Restitution: 0,
	})

	components.Body.SetValue(ramp, components.BodyData{Handle: body, Collider: collider})
	return ramp
}
