package systems

import (
	"math"
	"testing"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/physics"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestClassifyLocomotionPriority(t *testing.T) {
	tests := []struct {
		name                         string
		submerged, flying, grounded bool
		want                         cfg.LocomotionState
	}{
		{"nothing", false, false, false, cfg.Airborne},
		{"contact", false, false, true, cfg.Grounded},
		{"flying over ground", false, true, true, cfg.Flying},
		{"submerged beats flying", true, true, false, cfg.Submerged},
		{"submerged on the sea floor", true, false, true, cfg.Submerged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLocomotion(tt.submerged, tt.flying, tt.grounded); got != tt.want {
				t.Errorf("classifyLocomotion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmergedHysteresis(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, 5, 0})

	h.place(mgl64.Vec3{0, 0.2, 0}, mgl64.Vec3{})
	h.tick(nil, UpdateLocomotion)
	if h.loco().CurrentState != cfg.Airborne {
		t.Fatalf("above sea level: state = %v", h.loco().CurrentState)
	}

	h.place(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{})
	h.tick(nil, UpdateLocomotion)
	if h.loco().CurrentState != cfg.Submerged {
		t.Fatalf("at sea level: state = %v, want submerged", h.loco().CurrentState)
	}

	// Residual bounce around the surface, never above the band.
	for i := 0; i < 200; i++ {
		y := 0.55 * math.Sin(float64(i)*0.7)
		h.place(mgl64.Vec3{0, y, 0}, mgl64.Vec3{0, 1, 0})
		h.tick(nil, UpdateLocomotion)
		if h.loco().CurrentState != cfg.Submerged {
			t.Fatalf("tick %d y=%.3f: left submerged inside the band", i, y)
		}
	}
	if h.loco().Transitions != 1 {
		t.Errorf("transitions = %d, want 1", h.loco().Transitions)
	}

	h.place(mgl64.Vec3{0, cfg.Ocean.SeaLevel + cfg.Ocean.Band + 0.01, 0}, mgl64.Vec3{})
	h.tick(nil, UpdateLocomotion)
	if h.loco().CurrentState != cfg.Airborne {
		t.Errorf("above the band: state = %v, want airborne", h.loco().CurrentState)
	}
}

func TestFlightToggleSideEffectsRunOncePerEdge(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, 20, 0})
	h.place(mgl64.Vec3{0, 20, 0}, mgl64.Vec3{10, 2, 0})
	h.world.SetAngvel(h.body(), mgl64.Vec3{1, 2, 3})

	toggle := []cfg.ActionID{cfg.ActionToggleFlight}
	for i := 0; i < 30; i++ {
		h.tick(toggle, UpdateLocomotion) // held: only the first tick is an edge
	}
	loco := h.loco()
	if loco.CurrentState != cfg.Flying {
		t.Fatalf("state = %v, want flying", loco.CurrentState)
	}
	if h.engine.gravityScaleCalls != 1 || h.engine.angvelResets != 1 {
		t.Errorf("entry effects ran gravity=%d angvel=%d times, want once each",
			h.engine.gravityScaleCalls, h.engine.angvelResets)
	}
	if s := h.world.GravityScale(h.body()); s != 0 {
		t.Errorf("gravity scale while flying = %v", s)
	}
	if w := h.world.Angvel(h.body()); w != (mgl64.Vec3{}) {
		t.Errorf("angular velocity after entry = %v", w)
	}
	flight := components.Flight.Get(h.player)
	wantPitch := math.Atan2(2, 10)
	if math.Abs(flight.PitchTarget-wantPitch) > 1e-9 || flight.RollTarget != 0 {
		t.Errorf("targets = %v/%v, want velocity pitch %v and zero roll", flight.PitchTarget, flight.RollTarget, wantPitch)
	}

	h.tick(nil, UpdateLocomotion)
	h.tick(toggle, UpdateLocomotion)
	if loco.CurrentState != cfg.Airborne {
		t.Fatalf("after second toggle: state = %v", loco.CurrentState)
	}
	if h.engine.gravityScaleCalls != 2 {
		t.Errorf("gravity scale set %d times, want 2", h.engine.gravityScaleCalls)
	}
	if s := h.world.GravityScale(h.body()); s != 1 {
		t.Errorf("gravity scale after exit = %v", s)
	}
	if flight.PitchTarget != 0 || flight.RollTarget != 0 {
		t.Errorf("targets after exit = %v/%v", flight.PitchTarget, flight.RollTarget)
	}
	if loco.Transitions != 2 {
		t.Errorf("transitions = %d, want 2", loco.Transitions)
	}
}

func TestSubmergingWhileFlyingRunsFlightExit(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, 10, 0})
	h.tick([]cfg.ActionID{cfg.ActionToggleFlight}, UpdateLocomotion)
	if !h.loco().IsFlying() {
		t.Fatal("not flying")
	}

	h.place(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{5, -5, 0})
	h.tick(nil, UpdateLocomotion)

	loco := h.loco()
	if !loco.IsSubmerged() || loco.PreviousState != cfg.Flying {
		t.Fatalf("state = %v (previous %v), want submerged from flying", loco.CurrentState, loco.PreviousState)
	}
	if loco.FlightEngaged {
		t.Error("flight toggle still engaged under water")
	}
	if s := h.world.GravityScale(h.body()); s != 1 {
		t.Errorf("gravity scale = %v, want restored to 1", s)
	}

	// Input is ignored under water, including the flight toggle.
	h.tick(nil, UpdateLocomotion)
	h.tick([]cfg.ActionID{cfg.ActionToggleFlight, cfg.ActionForward}, UpdateLocomotion)
	if !loco.IsSubmerged() || loco.FlightEngaged {
		t.Errorf("toggle under water changed state to %v", loco.CurrentState)
	}
}

func TestSubmergedDampsAndLifts(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, -1, 0})
	h.place(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{4, 0, 0})
	h.world.SetAngvel(h.body(), mgl64.Vec3{0, 0, 2})
	h.tick(nil, UpdateLocomotion)

	v := h.world.Linvel(h.body())
	if math.Abs(v.X()-4*cfg.Ocean.WaterDamping) > 1e-9 {
		t.Errorf("vx = %v, want damped %v", v.X(), 4*cfg.Ocean.WaterDamping)
	}
	if v.Y() <= 0 {
		t.Errorf("vy = %v, want buoyancy lift", v.Y())
	}
	if w := h.world.Angvel(h.body()).Z(); math.Abs(w-2*cfg.Ocean.WaterDamping) > 1e-9 {
		t.Errorf("wz = %v, want damped", w)
	}
}

func TestSubmergedStepClampsDepth(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	_, _, shallow := submergedStep(mgl64.Vec3{}, mgl64.Vec3{}, -cfg.Ocean.MaxBuoyancyDepth, 1, dt)
	_, _, deep := submergedStep(mgl64.Vec3{}, mgl64.Vec3{}, -50, 1, dt)
	if shallow.Sub(deep).Len() > 1e-12 {
		t.Errorf("buoyancy below the clamp depth differs: %v vs %v", shallow, deep)
	}
	_, _, dry := submergedStep(mgl64.Vec3{}, mgl64.Vec3{}, 1, 1, dt)
	if dry != (mgl64.Vec3{}) {
		t.Errorf("buoyancy above the surface = %v", dry)
	}
}

func TestGroundedRollsAirborneSteers(t *testing.T) {
	forward := gamemath.HeadingDir(0)
	torque := groundedTorque(forward, 2)
	if torque.Sub(mgl64.Vec3{0, 0, -2}).Len() > 1e-12 {
		t.Errorf("grounded torque = %v, want about -Z", torque)
	}

	impulse := airborneImpulse(mgl64.Vec3{0.6, 0.8, 0}, 1)
	if impulse.Y() != 0 || impulse.X() != 0.6 {
		t.Errorf("airborne impulse = %v, want flattened", impulse)
	}

	var input components.InputData
	input.Current[cfg.ActionForward] = true
	input.Current[cfg.ActionRight] = true
	dir := moveDirection(&input, forward, gamemath.RightOf(forward))
	if math.Abs(dir.Len()-1) > 1e-12 || dir.X() <= 0 || dir.Z() <= 0 {
		t.Errorf("forward+right = %v, want unit vector between +X and +Z", dir)
	}

	input.Current[cfg.ActionBack] = true
	input.Current[cfg.ActionLeft] = true
	if dir := moveDirection(&input, forward, gamemath.RightOf(forward)); dir != (mgl64.Vec3{}) {
		t.Errorf("opposing keys = %v, want zero", dir)
	}
}

func TestAirborneControlIsCameraRelative(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, 20, 0})
	cam := h.camera()
	cam.Ready = true
	cam.Position = mgl64.Vec3{0, 23, 8}
	cam.LookAt = mgl64.Vec3{0, 20, 0} // looking toward -Z

	h.place(mgl64.Vec3{0, 20, 0}, mgl64.Vec3{})
	h.tick([]cfg.ActionID{cfg.ActionForward}, UpdateLocomotion)
	v := h.world.Linvel(h.body())
	if v.Z() >= 0 || math.Abs(v.X()) > 1e-9 || v.Y() != 0 {
		t.Errorf("velocity = %v, want a push toward -Z only", v)
	}
}

func TestLocomotionWithoutBodyIsNoop(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	// Engine constructed but not initialized.
	e := ecs.NewECS(donburi.NewWorld())
	world := factory.NewPhysicsWorld()
	factory.CreatePhysicsWorld(e, world)
	factory.CreateSingletons(e)
	player := factory.CreatePlayer(e, cfg.Player.Spawn)
	if components.Body.Get(player).Handle != 0 {
		t.Fatal("body created before the engine was ready")
	}
	for i := 0; i < 5; i++ {
		AdvanceClock(e, dt)
		PushInput(e, InputSnapshot{cfg.ActionToggleFlight: true})
		UpdatePhysics(e)
		UpdateContacts(e)
		UpdateLocomotion(e)
		UpdateRamp(e)
		UpdateGate(e)
		UpdateFlight(e)
		UpdateCamera(e)
	}
	if loco := components.Locomotion.Get(player); loco.Transitions != 0 || loco.FlightEngaged {
		t.Errorf("locomotion changed without a body: %+v", *loco)
	}

	// Ready engine, body still missing.
	if err := world.Init(); err != nil {
		t.Fatal(err)
	}
	AdvanceClock(e, dt)
	PushInput(e, InputSnapshot{})
	UpdateLocomotion(e)
	if loco := components.Locomotion.Get(player); loco.Transitions != 0 {
		t.Errorf("locomotion ran with a zero body handle")
	}

	if !factory.AttachPlayerBody(player, world, cfg.Player.Spawn) {
		t.Fatal("AttachPlayerBody failed on a ready engine")
	}
	if factory.AttachPlayerBody(player, world, cfg.Player.Spawn) {
		t.Error("AttachPlayerBody created a second body")
	}
	if world.BodyType(components.Body.Get(player).Handle) != physics.Dynamic {
		t.Error("player body is not dynamic")
	}
}

func TestRampSuppressesLocomotionDynamics(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{0, 20, 0})
	h.ramp().Active = true
	h.place(mgl64.Vec3{0, 20, 0}, mgl64.Vec3{})

	h.tick([]cfg.ActionID{cfg.ActionToggleFlight, cfg.ActionForward}, UpdateLocomotion)
	if h.loco().FlightEngaged {
		t.Error("flight toggle accepted while on the ramp")
	}
	if v := h.world.Linvel(h.body()); v != (mgl64.Vec3{}) {
		t.Errorf("locomotion pushed the body on the ramp: %v", v)
	}
}
