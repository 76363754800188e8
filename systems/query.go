package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// readyEngine returns the physics adapter, or nil while it is missing or
// still initializing. Every system treats nil as "skip this tick".
func readyEngine(ecs *ecs.ECS) physics.Engine {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return nil
	}
	engine := components.PhysicsWorld.Get(entry).Engine
	if engine == nil || !engine.Ready() {
		return nil
	}
	return engine
}

// tickDt returns the clamped elapsed time of the current tick.
func tickDt(ecs *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Dt
	}
	return cfg.Physics.FixedStep
}

// playerEntry returns the player entry if one has been spawned.
func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Locomotion.First(ecs.World)
}

// cameraBasis returns the horizontal forward/right directions the player's
// controls are relative to.
func cameraBasis(ecs *ecs.ECS) (forward, right mgl64.Vec3) {
	forward = gamemath.HeadingDir(cfg.Camera.DefaultHeading)
	if entry, ok := components.Camera.First(ecs.World); ok {
		cam := components.Camera.Get(entry)
		fallback := gamemath.HeadingDir(cam.Heading)
		if cam.Ready {
			forward, _ = gamemath.SafeNormalize(gamemath.Flatten(cam.LookAt.Sub(cam.Position)), fallback)
		} else {
			forward = fallback
		}
	}
	return forward, gamemath.RightOf(forward)
}
