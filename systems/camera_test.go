package systems

import (
	"math"
	"testing"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestResolveCameraMode(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	past := mgl64.Vec3{cfg.Camera.RampThresholdX + 5, 10, 0}
	before := mgl64.Vec3{cfg.Camera.RampThresholdX - 5, 10, 0}

	tests := []struct {
		name  string
		state cfg.LocomotionState
		p     mgl64.Vec3
		want  cfg.CameraMode
	}{
		{"rolling on the island", cfg.Grounded, before, cfg.CameraDefault},
		{"past the threshold", cfg.Grounded, past, cfg.CameraRamp},
		{"airborne past the threshold", cfg.Airborne, past, cfg.CameraRamp},
		{"flying beats ramp", cfg.Flying, past, cfg.CameraFlight},
		{"flying before the threshold", cfg.Flying, before, cfg.CameraFlight},
		{"submerged beats everything", cfg.Submerged, past, cfg.CameraOcean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCameraMode(tt.state, tt.p); got != tt.want {
				t.Errorf("resolveCameraMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraTargetFollowsBehindVelocity(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	p := mgl64.Vec3{-10, 12.5, 0}
	v := mgl64.Vec3{0, 0, 6}

	target := cameraTargetFor(cfg.CameraDefault, p, v, 0, 0, 0)
	want := mgl64.Vec3{-10, 12.5 + cfg.Camera.Default.Height, -cfg.Camera.Default.Distance}
	if target.Position.Sub(want).Len() > 1e-9 {
		t.Errorf("position = %v, want %v", target.Position, want)
	}
	if target.FOV <= cfg.Camera.Default.FOVMin || target.FOV >= cfg.Camera.Default.FOVMax {
		t.Errorf("FOV = %v, want inside the default range", target.FOV)
	}

	// Below the follow speed the supplied heading is used.
	slow := cameraTargetFor(cfg.CameraDefault, p, mgl64.Vec3{}, math.Pi, 0, 0)
	if slow.Position.X() <= p.X() {
		t.Errorf("slow target %v, want behind heading π (toward +X)", slow.Position)
	}
	if slow.FOV != cfg.Camera.Default.FOVMin {
		t.Errorf("FOV at rest = %v, want %v", slow.FOV, cfg.Camera.Default.FOVMin)
	}
}

func TestCameraTargetIsStateless(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	p := mgl64.Vec3{8, 6, 0.5}
	v := mgl64.Vec3{12, -3, 1}
	for _, mode := range []cfg.CameraMode{cfg.CameraDefault, cfg.CameraRamp, cfg.CameraFlight, cfg.CameraOcean} {
		a := cameraTargetFor(mode, p, v, 0.3, cfg.Camera.Ramp.Height, cfg.Camera.Ramp.Distance)
		b := cameraTargetFor(mode, p, v, -2.0, cfg.Camera.Ramp.Height, cfg.Camera.Ramp.Distance)
		if a != b {
			t.Errorf("%v: targets differ for the same body state: %+v vs %+v", mode, a, b)
		}
	}
}

func TestCameraRampEaseRearmsOnEachEntry(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{-5, 12.5, 0})
	island := mgl64.Vec3{cfg.Camera.RampThresholdX - 5, 12.5, 0}
	ramp := mgl64.Vec3{cfg.Camera.RampThresholdX + 5, 8, 0}
	v := mgl64.Vec3{8, 0, 0}

	h.place(island, v)
	h.tick(nil, UpdateCamera)
	cam := h.camera()
	if cam.Mode != cfg.CameraDefault || !cam.Ready {
		t.Fatalf("mode = %v ready=%v", cam.Mode, cam.Ready)
	}

	h.place(ramp, v)
	h.tick(nil, UpdateCamera)
	if cam.Mode != cfg.CameraRamp || cam.PreviousMode != cfg.CameraDefault {
		t.Fatalf("mode = %v (previous %v), want Default -> Ramp", cam.Mode, cam.PreviousMode)
	}
	if cam.RampHeight == nil || math.Abs(cam.RampElapsed-dt) > 1e-12 {
		t.Fatalf("ramp ease not armed: elapsed %v", cam.RampElapsed)
	}

	for i := 0; i < 200; i++ {
		h.tick(nil, UpdateCamera)
	}
	if cam.RampElapsed != cfg.Camera.RampEaseDuration {
		t.Errorf("elapsed = %v, want clamped to %v", cam.RampElapsed, cfg.Camera.RampEaseDuration)
	}
	height, distance := advanceRampEase(cam, cfg.CameraRamp, dt)
	if height != cfg.Camera.Ramp.Height || distance != cfg.Camera.Ramp.Distance {
		t.Errorf("finished ease = %v/%v, want %v/%v", height, distance, cfg.Camera.Ramp.Height, cfg.Camera.Ramp.Distance)
	}

	// Same body state twice after the ease: same target.
	first := cameraTargetFor(cam.Mode, ramp, v, cam.Heading, height, distance)
	h.tick(nil, UpdateCamera)
	height, distance = advanceRampEase(cam, cam.Mode, dt)
	second := cameraTargetFor(cam.Mode, ramp, v, cam.Heading, height, distance)
	if first != second {
		t.Errorf("target changed without a state change: %+v vs %+v", first, second)
	}

	h.place(island, v)
	h.tick(nil, UpdateCamera)
	h.place(ramp, v)
	h.tick(nil, UpdateCamera)
	if math.Abs(cam.RampElapsed-dt) > 1e-12 {
		t.Errorf("ease not re-armed on the second entry: elapsed %v", cam.RampElapsed)
	}
}

func TestCameraEaseStartsFromDefaultFraming(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cam := &components.CameraData{}
	armRampEase(cam)
	h0, d0 := advanceRampEase(cam, cfg.CameraRamp, dt)
	if h0 < cfg.Camera.RampStartHeight || h0 > cfg.Camera.Ramp.Height {
		t.Errorf("height %v outside the ease range", h0)
	}
	if d0 < cfg.Camera.RampStartDistance || d0 > cfg.Camera.Ramp.Distance {
		t.Errorf("distance %v outside the ease range", d0)
	}
	if h0-cfg.Camera.RampStartHeight > 0.5 {
		t.Errorf("first tick jumped to %v", h0)
	}
}

func TestCameraSmoothsTowardTarget(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{-20, 12.5, 0})
	h.place(mgl64.Vec3{-20, 12.5, 0}, mgl64.Vec3{5, 0, 0})
	h.tick(nil, UpdateCamera)
	cam := h.camera()
	snapped := cam.Position

	h.place(mgl64.Vec3{-15, 12.5, 0}, mgl64.Vec3{5, 0, 0})
	h.tick(nil, UpdateCamera)
	target := cameraTargetFor(cfg.CameraDefault, mgl64.Vec3{-15, 12.5, 0}, mgl64.Vec3{5, 0, 0}, 0, 0, 0)
	moved := cam.Position.Sub(snapped).Len()
	if moved <= 0 || moved >= target.Position.Sub(snapped).Len() {
		t.Errorf("camera moved %v, want a partial step toward the target", moved)
	}
}

func TestCameraFollowsLocomotionState(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{-20, 12.5, 0})
	h.tick(nil, UpdateCamera)

	h.loco().CurrentState = cfg.Flying
	h.tick(nil, UpdateCamera)
	if h.camera().Mode != cfg.CameraFlight {
		t.Errorf("mode = %v, want Flight", h.camera().Mode)
	}

	h.loco().CurrentState = cfg.Submerged
	h.tick(nil, UpdateCamera)
	if h.camera().Mode != cfg.CameraOcean {
		t.Errorf("mode = %v, want Ocean", h.camera().Mode)
	}
}

func TestCameraAtRestStaysFinite(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{-20, 12.5, 0})
	h.place(mgl64.Vec3{-20, 12.5, 0}, mgl64.Vec3{})
	for i := 0; i < 10; i++ {
		h.tick(nil, UpdateCamera)
	}
	cam := h.camera()
	for _, f := range []float64{cam.Position.X(), cam.Position.Y(), cam.Position.Z(), cam.FOV, cam.Heading} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("camera state not finite: %+v", *cam)
		}
	}
}

func TestFreeRoamSavesAndRestores(t *testing.T) {
	h := newHarness(t, mgl64.Vec3{-20, 12.5, 0})
	player := mgl64.Vec3{-20, 12.5, 0}
	h.place(player, mgl64.Vec3{4, 0, 0})
	for i := 0; i < 5; i++ {
		h.tick(nil, UpdateCamera)
	}
	cam := h.camera()
	savedMode, savedPos, savedLook, savedFOV := cam.Mode, cam.Position, cam.LookAt, cam.FOV

	toggle := []cfg.ActionID{cfg.ActionToggleFreeRoam}
	h.tick(toggle, UpdateCamera)
	if cam.Mode != cfg.CameraFreeRoam || !cam.FreeRoam.Engaged {
		t.Fatalf("mode = %v, want FreeRoam", cam.Mode)
	}

	orbit := []cfg.ActionID{cfg.ActionToggleFreeRoam, cfg.ActionOrbitRight, cfg.ActionZoomOut}
	for i := 0; i < 30; i++ {
		h.tick(orbit, UpdateCamera)
	}
	if cam.Position.Sub(savedPos).Len() <= 1e-3 {
		t.Error("orbit input did not move the camera")
	}
	if d := cam.Position.Sub(player).Len(); math.Abs(d-cam.FreeRoam.Radius) > 1e-9 {
		t.Errorf("camera at distance %v, want orbit radius %v", d, cam.FreeRoam.Radius)
	}
	if cam.LookAt != player {
		t.Errorf("free roam looks at %v, want the player", cam.LookAt)
	}
	if cam.Mode != cfg.CameraFreeRoam {
		t.Errorf("mode changed while free roaming: %v", cam.Mode)
	}

	h.tick(nil, UpdateCamera)
	h.tick(toggle, UpdateCamera)
	if cam.FreeRoam.Engaged {
		t.Fatal("free roam still engaged")
	}
	if cam.Mode != savedMode || cam.Position != savedPos || cam.LookAt != savedLook || cam.FOV != savedFOV {
		t.Errorf("restored %v %v %v %v, want %v %v %v %v",
			cam.Mode, cam.Position, cam.LookAt, cam.FOV, savedMode, savedPos, savedLook, savedFOV)
	}
}
