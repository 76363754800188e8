package factory

import (
	"log"

	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPhysicsWorld constructs the physics adapter from the global config.
// The world is not ready until Init is called.
func NewPhysicsWorld() *physics.World {
	return physics.NewWorld(physics.Settings{
		Gravity:              cfg.Physics.Gravity,
		ContactSkin:          cfg.Physics.ContactSkin,
		RestitutionThreshold: cfg.Physics.RestitutionThreshold,
		MaxCCDSubsteps:       cfg.Physics.MaxCCDSubsteps,
		OriginX:              cfg.Physics.SpaceOriginX,
		OriginZ:              cfg.Physics.SpaceOriginZ,
		Width:                cfg.Physics.SpaceWidth,
		Depth:                cfg.Physics.SpaceDepth,
		CellSize:             cfg.Physics.CellSize,
	})
}

// CreatePhysicsWorld registers an engine as the world's singleton physics adapter.
func CreatePhysicsWorld(ecs *ecs.ECS, engine physics.Engine) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(ecs)
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{Engine: engine})
	if !engine.Ready() {
		log.Println("Physics world registered before initialization; bodies will be created once ready")
	}
	return entry
}
