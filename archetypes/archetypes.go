package archetypes

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Locomotion,
		components.Ramp,
		components.Flight,
	)
	Gate = newArchetype(
		tags.Gate,
		components.Gate,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Body,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Records = newArchetype(
		components.Records,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
