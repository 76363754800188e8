package factory

import (
	"github.com/automoto/ballglide/archetypes"
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Mode:         cfg.CameraDefault,
		PreviousMode: cfg.CameraDefault,
		FOV:          cfg.Camera.Default.FOVMin,
		Heading:      cfg.Camera.DefaultHeading,
	})
	return camera
}
