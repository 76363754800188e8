package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGate creates the trigger plane that arms the ramp
func CreateGate(ecs *ecs.ECS) *donburi.Entry {
	gate := archetypes.Gate.Spawn(ecs)

	normal := gamemath.HeadingDir(cfg.Gate.Yaw)
	components.Gate.SetValue(gate, components.GateData{
		Center:     cfg.Gate.Center,
		Normal:     normal,
		Axis:       gamemath.RightOf(normal),
		HalfWidth:  cfg.Gate.Width / 2,
		HalfHeight: cfg.Gate.Height / 2,
	})

	return gate
}
