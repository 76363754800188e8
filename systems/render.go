package systems

import (
	"image/color"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pixels per metre of the side view
const viewScale = 10

var (
	seaColor    = color.RGBA{40, 90, 160, 255}
	groundColor = color.RGBA{90, 140, 70, 255}
	rampColor   = color.RGBA{200, 180, 120, 255}
	gateColor   = color.RGBA{230, 200, 40, 255}
	ballColors  = map[cfg.LocomotionState]color.RGBA{
		cfg.Grounded:  {230, 230, 230, 255},
		cfg.Airborne:  {230, 160, 60, 255},
		cfg.Flying:    {120, 220, 250, 255},
		cfg.Submerged: {90, 120, 200, 255},
	}
)

// DrawCourse renders a side view (X right, Y up) centred on the camera's
// look-at point.
func DrawCourse(ecs *ecs.ECS, screen *ebiten.Image) {
	center := mgl64.Vec3{}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		center = components.Camera.Get(cameraEntry).LookAt
	}
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	toScreen := func(p mgl64.Vec3) (float32, float32) {
		return float32(w/2 + (p.X()-center.X())*viewScale), float32(h/2 - (p.Y()-center.Y())*viewScale)
	}

	// Sea surface
	_, seaY := toScreen(mgl64.Vec3{0, cfg.Ocean.SeaLevel, 0})
	vector.DrawFilledRect(screen, 0, seaY, float32(w), float32(h)-seaY, seaColor, false)

	// Island top
	origin := cfg.Ramp.Origin
	x0, y0 := toScreen(origin.Sub(mgl64.Vec3{cfg.Course.IslandLength, 0, 0}))
	x1, _ := toScreen(origin)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, float32(h)-y0, groundColor, false)

	// Ramp profile
	frame := factory.RampFrame()
	segments := cfg.Ramp.MeshSegments
	for i := 0; i < segments; i++ {
		a := frame.Surface(frame.Curve.Length*float64(i)/float64(segments), 0)
		b := frame.Surface(frame.Curve.Length*float64(i+1)/float64(segments), 0)
		ax, ay := toScreen(a)
		bx, by := toScreen(b)
		vector.StrokeLine(screen, ax, ay, bx, by, 2, rampColor, true)
	}

	// Gates
	components.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		gx, gTop := toScreen(gate.Center.Add(mgl64.Vec3{0, gate.HalfHeight, 0}))
		_, gBottom := toScreen(gate.Center.Sub(mgl64.Vec3{0, gate.HalfHeight, 0}))
		vector.StrokeLine(screen, gx, gTop, gx, gBottom, 2, gateColor, false)
	})

	// Player
	engine := readyEngine(ecs)
	playerEntry, ok := playerEntry(ecs)
	if engine == nil || !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	if body.Handle == 0 {
		return
	}
	px, py := toScreen(engine.Translation(body.Handle))
	radius := float32(components.Player.Get(playerEntry).Radius * viewScale)
	vector.DrawFilledCircle(screen, px, py, radius, ballColors[components.Locomotion.Get(playerEntry).CurrentState], true)
}
