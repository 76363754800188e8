package components

import (
	cfg "github.com/automoto/ballglide/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FreeRoamData is the orbit override and the pose saved when it engaged
type FreeRoamData struct {
	Engaged bool
	Yaw     float64
	Pitch   float64
	Radius  float64

	SavedMode     cfg.CameraMode
	SavedPosition mgl64.Vec3
	SavedLookAt   mgl64.Vec3
	SavedFOV      float64
}

type CameraData struct {
	Mode         cfg.CameraMode
	PreviousMode cfg.CameraMode

	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64
	Heading  float64

	// Ramp ease-out, re-armed on each Default -> Ramp transition
	RampHeight   *gween.Tween
	RampDistance *gween.Tween
	RampElapsed  float64

	FreeRoam FreeRoamData
	Ready    bool // false until the first update snaps to target
}

var Camera = donburi.NewComponentType[CameraData]()
