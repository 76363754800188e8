package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/automoto/ballglide/systems"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot is what rendering and HUD code may read after a tick.
type Snapshot struct {
	Ready bool // false until the physics world is initialized and the player exists

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Rotation mgl64.Quat

	State       cfg.LocomotionState
	IsFlying    bool
	IsSubmerged bool
	OnRamp      bool
	RampExited  bool

	CameraMode     cfg.CameraMode
	CameraPosition mgl64.Vec3
	CameraLookAt   mgl64.Vec3
	CameraFOV      float64
}

// GlideScene owns the ECS world of one run and drives it one tick at a time.
type GlideScene struct {
	ecs    *ecs.ECS
	engine physics.Engine
	once   sync.Once

	player      *donburi.Entry
	courseBuilt bool
}

// NewGlideScene creates a scene around a physics engine. The engine may
// still be initializing; the course and the player body are created on the
// first tick it reports ready.
func NewGlideScene(engine physics.Engine) *GlideScene {
	return &GlideScene{engine: engine}
}

// Update runs one tick with keyboard input at the configured tick rate.
func (gs *GlideScene) Update() {
	gs.Advance(systems.PollKeyboard(), 1/float64(cfg.C.TPS))
}

// Advance runs one tick with the given input and elapsed time.
func (gs *GlideScene) Advance(input systems.InputSnapshot, dt float64) {
	gs.once.Do(gs.configure)
	gs.pollReady()

	systems.AdvanceClock(gs.ecs, dt)
	systems.PushInput(gs.ecs, input)
	gs.ecs.Update()
}

func (gs *GlideScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// ECS exposes the scene's world for tests and tools.
func (gs *GlideScene) ECS() *ecs.ECS {
	gs.once.Do(gs.configure)
	return gs.ecs
}

func (gs *GlideScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order is load-bearing: each system reads what the previous one wrote.
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateRamp)
	ecs.AddSystem(systems.UpdateGate)
	ecs.AddSystem(systems.UpdateFlight)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateRecords)

	ecs.AddRenderer(cfg.Default, systems.DrawCourse)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.ecs = ecs

	factory.CreatePhysicsWorld(ecs, gs.engine)
	factory.CreateSingletons(ecs)
	factory.CreateCamera(ecs)
	factory.CreateGate(ecs)
	gs.player = factory.CreatePlayer(ecs, cfg.Player.Spawn)

	if saved, err := systems.LoadRecords(); err == nil && saved != nil {
		systems.ApplySavedRecords(ecs, saved)
	}
}

// pollReady builds the physics side of the scene once the engine is ready.
func (gs *GlideScene) pollReady() {
	if gs.courseBuilt || gs.engine == nil || !gs.engine.Ready() {
		return
	}
	factory.CreateCourse(gs.ecs, gs.engine)
	if !factory.AttachPlayerBody(gs.player, gs.engine, cfg.Player.Spawn) && components.Body.Get(gs.player).Handle == 0 {
		log.Println("Warning: could not create the player body")
	}
	gs.courseBuilt = true
}

// Snapshot returns the readable state after the last tick.
func (gs *GlideScene) Snapshot() Snapshot {
	var s Snapshot
	if gs.ecs == nil || gs.player == nil || gs.engine == nil || !gs.engine.Ready() {
		return s
	}
	body := components.Body.Get(gs.player)
	if body.Handle == 0 {
		return s
	}
	loco := components.Locomotion.Get(gs.player)
	ramp := components.Ramp.Get(gs.player)

	s.Ready = true
	s.Position = gs.engine.Translation(body.Handle)
	s.Velocity = gs.engine.Linvel(body.Handle)
	s.Rotation = gs.engine.Rotation(body.Handle)
	s.State = loco.CurrentState
	s.IsFlying = loco.IsFlying()
	s.IsSubmerged = loco.IsSubmerged()
	s.OnRamp = ramp.Active
	s.RampExited = ramp.JustExited

	if cameraEntry, ok := components.Camera.First(gs.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		s.CameraMode = camera.Mode
		s.CameraPosition = camera.Position
		s.CameraLookAt = camera.LookAt
		s.CameraFOV = camera.FOV
	}
	return s
}
