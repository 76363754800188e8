package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/fonts"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

var (
	hudFace  text.Face
	hudColor = color.RGBA{240, 240, 240, 255}
)

// DrawHUD renders the mode labels and flight readout in the top-left corner.
// Without a loaded HUD font it falls back to the debug print.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	if hudFace == nil && fonts.Loaded(fonts.Mono) {
		hudFace = text.NewGoXFace(fonts.Mono.Get())
	}
	for i, line := range HUDLines(ecs) {
		y := hudMargin + i*hudLineHeight
		if hudFace == nil {
			ebitenutil.DebugPrintAt(screen, line, hudMargin, y)
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin, float64(y))
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, line, hudFace, op)
	}
}

// HUDLines formats the readable state of the tick.
func HUDLines(ecs *ecs.ECS) []string {
	playerEntry, ok := playerEntry(ecs)
	if !ok {
		return []string{"waiting for physics"}
	}
	body := components.Body.Get(playerEntry)
	engine := readyEngine(ecs)
	if engine == nil || body.Handle == 0 {
		return []string{"waiting for physics"}
	}

	loco := components.Locomotion.Get(playerEntry)
	ramp := components.Ramp.Get(playerEntry)
	flight := components.Flight.Get(playerEntry)
	p := engine.Translation(body.Handle)
	v := engine.Linvel(body.Handle)

	mode := cfg.CameraDefault
	fov := 0.0
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		mode, fov = camera.Mode, camera.FOV
	}

	lines := []string{
		fmt.Sprintf("state: %s  camera: %s  fov: %.0f", loco.CurrentState, mode, fov),
		fmt.Sprintf("pos: %.1f %.1f %.1f  speed: %.1f", p.X(), p.Y(), p.Z(), v.Len()),
	}
	if ramp.Active {
		lines = append(lines, fmt.Sprintf("ramp: x=%.1f/%.0f  v=%.1f  in=%.1f",
			ramp.Progress, cfg.Ramp.Length, ramp.ArcSpeed, ramp.EntryArcSpeed))
	}
	if loco.IsFlying() {
		lines = append(lines, fmt.Sprintf("aoa: %.1f  cl: %.2f  pitch: %.1f  roll: %.1f",
			mgl64.RadToDeg(flight.AngleOfAttack), flight.LiftCoefficient,
			mgl64.RadToDeg(flight.Pitch), mgl64.RadToDeg(flight.Roll)))
	}
	if recordsEntry, ok := components.Records.First(ecs.World); ok {
		r := components.Records.Get(recordsEntry)
		lines = append(lines, fmt.Sprintf("best exit: %.1f  longest flight: %.1fs  runs: %d",
			r.BestRampExitSpeed, r.LongestFlightSeconds, r.RampRuns))
	}
	if cfg.Debug.TuningPath != "" {
		lines = append(lines, "tuning: "+cfg.Debug.TuningPath)
	}
	return lines
}
