package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourse builds the static geometry: the island cliff up to the ramp
// origin, the ramp itself and the sea floor.
func CreateCourse(ecs *ecs.ECS, engine physics.Engine) {
	top := cfg.Ramp.Origin.Y()
	start := cfg.Ramp.Origin.X()
	CreateSlab(ecs, engine,
		mgl64.Vec3{start - cfg.Course.IslandLength, cfg.Ocean.FloorY, cfg.Ramp.Origin.Z() - cfg.Course.HalfDepth},
		mgl64.Vec3{start, top, cfg.Ramp.Origin.Z() + cfg.Course.HalfDepth},
	)
	CreateSlab(ecs, engine,
		mgl64.Vec3{cfg.Physics.SpaceOriginX, cfg.Ocean.FloorY - 2, cfg.Physics.SpaceOriginZ},
		mgl64.Vec3{cfg.Physics.SpaceOriginX + float64(cfg.Physics.SpaceWidth), cfg.Ocean.FloorY, cfg.Physics.SpaceOriginZ + float64(cfg.Physics.SpaceDepth)},
	)
	CreateRamp(ecs, engine)
}

// CreateSingletons creates the per-world singleton entries.
func CreateSingletons(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Dt: cfg.Physics.FixedStep})
	archetypes.Records.Spawn(ecs)
}
