package systems

import (
	"math"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// cameraTarget is the pose a camera mode wants this tick.
type cameraTarget struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64
	Rate     float64
}

// UpdateCamera re-derives the camera mode from the player's live state and
// smooths the camera toward that mode's target. Must run last among the
// simulation systems.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	engine := readyEngine(e)
	if engine == nil {
		return
	}
	playerEntry, ok := playerEntry(e)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	if body.Handle == 0 {
		return
	}
	loco := components.Locomotion.Get(playerEntry)
	position := engine.Translation(body.Handle)
	velocity := engine.Linvel(body.Handle)
	input := getOrCreateInput(e)
	dt := tickDt(e)

	if GetAction(input, cfg.ActionToggleFreeRoam).JustPressed {
		toggleFreeRoam(camera, position)
		if !camera.FreeRoam.Engaged {
			return
		}
	}
	if camera.FreeRoam.Engaged {
		orbitFreeRoam(camera, input, position, dt)
		return
	}

	mode := resolveCameraMode(loco.CurrentState, position)
	if camera.Mode == cfg.CameraDefault && mode == cfg.CameraRamp {
		armRampEase(camera)
	}
	camera.PreviousMode = camera.Mode
	camera.Mode = mode

	rampHeight, rampDistance := advanceRampEase(camera, mode, dt)
	target := cameraTargetFor(mode, position, velocity, camera.Heading, rampHeight, rampDistance)

	if heading, ok := gamemath.HeadingOf(velocity, cfg.Camera.MinFollowSpeed); ok {
		camera.Heading = gamemath.ApproachAngle(camera.Heading, heading, cfg.Camera.HeadingSmoothing, dt)
	}

	if !camera.Ready {
		camera.Position = target.Position
		camera.LookAt = target.LookAt
		camera.FOV = target.FOV
		camera.Ready = true
		return
	}
	t := gamemath.SmoothingFactor(target.Rate, dt)
	camera.Position = camera.Position.Add(target.Position.Sub(camera.Position).Mul(t))
	camera.LookAt = camera.LookAt.Add(target.LookAt.Sub(camera.LookAt).Mul(t))
	camera.FOV += (target.FOV - camera.FOV) * t
}

// resolveCameraMode picks the mode in priority order
// Ocean > Flight > Ramp > Default.
func resolveCameraMode(state cfg.LocomotionState, position mgl64.Vec3) cfg.CameraMode {
	switch {
	case state == cfg.Submerged:
		return cfg.CameraOcean
	case state == cfg.Flying:
		return cfg.CameraFlight
	case position.X() > cfg.Camera.RampThresholdX:
		return cfg.CameraRamp
	default:
		return cfg.CameraDefault
	}
}

func cameraModeConfig(mode cfg.CameraMode) cfg.CameraModeConfig {
	switch mode {
	case cfg.CameraRamp:
		return cfg.Camera.Ramp
	case cfg.CameraFlight:
		return cfg.Camera.Flight
	case cfg.CameraOcean:
		return cfg.Camera.Ocean
	default:
		return cfg.Camera.Default
	}
}

// cameraTargetFor computes a mode's target pose. It depends only on its
// arguments; heading is the fallback direction when the player is too slow
// to define one.
func cameraTargetFor(mode cfg.CameraMode, position, velocity mgl64.Vec3, heading, rampHeight, rampDistance float64) cameraTarget {
	mc := cameraModeConfig(mode)
	distance, height := mc.Distance, mc.Height
	if mode == cfg.CameraRamp {
		distance, height = rampDistance, rampHeight
	}

	var behind mgl64.Vec3
	if mode == cfg.CameraOcean {
		behind = gamemath.HeadingDir(cfg.Camera.DefaultHeading)
	} else if h, ok := gamemath.HeadingOf(velocity, cfg.Camera.MinFollowSpeed); ok {
		behind = gamemath.HeadingDir(h)
	} else {
		behind = gamemath.HeadingDir(heading)
	}

	speedRatio := 1.0
	if mc.SpeedForMaxFOV > 0 {
		speedRatio = gamemath.ClampFloat(velocity.Len()/mc.SpeedForMaxFOV, 0, 1)
	}

	return cameraTarget{
		Position: position.Sub(behind.Mul(distance)).Add(gamemath.Up.Mul(height)),
		LookAt:   position.Add(gamemath.Up.Mul(mc.LookHeight)),
		FOV:      gamemath.Lerp(mc.FOVMin, mc.FOVMax, speedRatio),
		Rate:     mc.Smoothing,
	}
}

// armRampEase restarts the one-shot ease-out from the default framing to
// the wide ramp framing.
func armRampEase(camera *components.CameraData) {
	duration := float32(math.Max(cfg.Camera.RampEaseDuration, 0))
	camera.RampHeight = gween.New(float32(cfg.Camera.RampStartHeight), float32(cfg.Camera.Ramp.Height), duration, ease.OutCubic)
	camera.RampDistance = gween.New(float32(cfg.Camera.RampStartDistance), float32(cfg.Camera.Ramp.Distance), duration, ease.OutCubic)
	camera.RampElapsed = 0
}

// advanceRampEase returns the ramp framing for this tick. Outside Ramp mode
// or once the ease has finished it is the configured ramp framing.
func advanceRampEase(camera *components.CameraData, mode cfg.CameraMode, dt float64) (height, distance float64) {
	height, distance = cfg.Camera.Ramp.Height, cfg.Camera.Ramp.Distance
	if mode != cfg.CameraRamp || camera.RampHeight == nil || camera.RampDistance == nil {
		return height, distance
	}
	if camera.RampElapsed >= cfg.Camera.RampEaseDuration {
		return height, distance
	}
	camera.RampElapsed = math.Min(camera.RampElapsed+dt, cfg.Camera.RampEaseDuration)
	h, _ := camera.RampHeight.Update(float32(dt))
	d, _ := camera.RampDistance.Update(float32(dt))
	return float64(h), float64(d)
}

// toggleFreeRoam engages the orbit override, saving the current mode and
// pose, or disengages it and restores them.
func toggleFreeRoam(camera *components.CameraData, player mgl64.Vec3) {
	fr := &camera.FreeRoam
	if fr.Engaged {
		camera.Mode = fr.SavedMode
		camera.PreviousMode = cfg.CameraFreeRoam
		camera.Position = fr.SavedPosition
		camera.LookAt = fr.SavedLookAt
		camera.FOV = fr.SavedFOV
		fr.Engaged = false
		return
	}

	fr.Engaged = true
	fr.SavedMode = camera.Mode
	fr.SavedPosition = camera.Position
	fr.SavedLookAt = camera.LookAt
	fr.SavedFOV = camera.FOV

	offset := camera.Position.Sub(player)
	fr.Radius = gamemath.ClampFloat(offset.Len(), cfg.Camera.FreeRoam.MinRadius, cfg.Camera.FreeRoam.MaxRadius)
	fr.Yaw = math.Atan2(offset.Z(), offset.X())
	pitch := 0.0
	if l := offset.Len(); l > gamemath.MinDirection {
		pitch = math.Asin(gamemath.ClampFloat(offset.Y()/l, -1, 1))
	}
	fr.Pitch = gamemath.ClampFloat(pitch, cfg.Camera.FreeRoam.MinPitch, cfg.Camera.FreeRoam.MaxPitch)

	camera.PreviousMode = camera.Mode
	camera.Mode = cfg.CameraFreeRoam
}

// orbitFreeRoam drives the camera on a sphere around the player.
func orbitFreeRoam(camera *components.CameraData, input *components.InputData, player mgl64.Vec3, dt float64) {
	fr := &camera.FreeRoam
	c := cfg.Camera.FreeRoam

	fr.Yaw = gamemath.WrapAngle(fr.Yaw + axis(input, cfg.ActionOrbitRight, cfg.ActionOrbitLeft)*c.OrbitSpeed*dt)
	fr.Pitch = gamemath.ClampFloat(fr.Pitch+axis(input, cfg.ActionOrbitUp, cfg.ActionOrbitDown)*c.OrbitSpeed*dt, c.MinPitch, c.MaxPitch)
	fr.Radius = gamemath.ClampFloat(fr.Radius+axis(input, cfg.ActionZoomOut, cfg.ActionZoomIn)*c.ZoomSpeed*dt, c.MinRadius, c.MaxRadius)

	cosPitch := math.Cos(fr.Pitch)
	offset := mgl64.Vec3{
		math.Cos(fr.Yaw) * cosPitch,
		math.Sin(fr.Pitch),
		math.Sin(fr.Yaw) * cosPitch,
	}.Mul(fr.Radius)

	camera.Position = player.Add(offset)
	camera.LookAt = player
}
