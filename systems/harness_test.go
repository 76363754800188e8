package systems

import (
	"testing"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt = 1.0 / 60.0

// countingEngine records the transition side effects that must happen once
// per edge.
type countingEngine struct {
	physics.Engine
	gravityScaleCalls int
	angvelResets      int
}

func (c *countingEngine) SetGravityScale(h physics.BodyHandle, scale float64) {
	c.gravityScaleCalls++
	c.Engine.SetGravityScale(h, scale)
}

func (c *countingEngine) SetAngvel(h physics.BodyHandle, w mgl64.Vec3) {
	if w == (mgl64.Vec3{}) {
		c.angvelResets++
	}
	c.Engine.SetAngvel(h, w)
}

type harness struct {
	t      *testing.T
	ecs    *ecs.ECS
	world  *physics.World
	engine *countingEngine
	player *donburi.Entry
}

// newHarness builds an initialized world with a player at spawn and no
// course geometry.
func newHarness(t *testing.T, spawn mgl64.Vec3) *harness {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	world := factory.NewPhysicsWorld()
	if err := world.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	engine := &countingEngine{Engine: world}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePhysicsWorld(e, engine)
	factory.CreateSingletons(e)
	factory.CreateCamera(e)
	player := factory.CreatePlayer(e, spawn)
	if components.Body.Get(player).Handle == 0 {
		t.Fatal("player body was not created")
	}

	return &harness{t: t, ecs: e, world: world, engine: engine, player: player}
}

func (h *harness) body() physics.BodyHandle {
	return components.Body.Get(h.player).Handle
}

func (h *harness) loco() *components.LocomotionData {
	return components.Locomotion.Get(h.player)
}

func (h *harness) ramp() *components.RampData {
	return components.Ramp.Get(h.player)
}

func (h *harness) camera() *components.CameraData {
	entry, _ := components.Camera.First(h.ecs.World)
	return components.Camera.Get(entry)
}

// place moves the player without stepping physics.
func (h *harness) place(p, v mgl64.Vec3) {
	h.world.SetTranslation(h.body(), p)
	h.world.SetLinvel(h.body(), v)
}

// tick starts a tick with the given held actions and runs the systems.
func (h *harness) tick(held []cfg.ActionID, systems ...func(*ecs.ECS)) {
	var snapshot InputSnapshot
	for _, a := range held {
		snapshot[a] = true
	}
	AdvanceClock(h.ecs, dt)
	PushInput(h.ecs, snapshot)
	for _, s := range systems {
		s(h.ecs)
	}
}
