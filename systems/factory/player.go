package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, position mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Radius:         cfg.Player.Radius,
		Density:        cfg.Player.Density,
		Friction:       cfg.Player.Friction,
		Restitution:    cfg.Player.Restitution,
		LinearDamping:  cfg.Player.LinearDamping,
		AngularDamping: cfg.Player.AngularDamping,
	})
	components.Locomotion.SetValue(player, components.LocomotionData{
		CurrentState:  cfg.Airborne,
		PreviousState: cfg.Airborne,
	})

	if worldEntry, ok := components.PhysicsWorld.First(ecs.World); ok {
		AttachPlayerBody(player, components.PhysicsWorld.Get(worldEntry).Engine, position)
	}

	return player
}

// AttachPlayerBody creates the player's rigid body once the engine is ready.
// It is a no-op while the engine is still initializing or when the body exists.
func AttachPlayerBody(player *donburi.Entry, engine physics.Engine, position mgl64.Vec3) bool {
	body := components.Body.Get(player)
	if body.Handle != 0 || engine == nil || !engine.Ready() {
		return false
	}
	attrs := components.Player.Get(player)

	handle := engine.CreateDynamicBody(physics.BodyDesc{
		Position:       position,
		LinearDamping:  attrs.LinearDamping,
		AngularDamping: attrs.AngularDamping,
		CCD:            cfg.Player.CCD,
	})
	collider := engine.CreateBallCollider(handle, attrs.Radius, physics.ColliderDesc{
		Friction:    attrs.Friction,
		Restitution: attrs.Restitution,
		Density:     attrs.Density,
	})
	body.Handle = handle
	body.Collider = collider
	return handle != 0
}
