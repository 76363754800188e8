package factory

import (
	"log"
	"math"

	"github.com/automoto/ballglide/assets"
	cfg "github.com/automoto/ballglide/config"
)

// ApplyCourse copies a loaded course layout into the global config. It must
// run before the physics world and the scene are created.
func ApplyCourse(c *assets.Course) {
	if c == nil {
		return
	}
	if math.Abs(c.IslandTop-c.RampOrigin.Y()) > 1e-6 {
		log.Printf("Warning: course %s: island top %.2f does not meet the ramp origin at %.2f", c.Name, c.IslandTop, c.RampOrigin.Y())
	}

	cfg.Player.Spawn = c.Spawn

	cfg.Course.IslandLength = c.RampOrigin.X() - c.IslandMinX
	cfg.Ocean.FloorY = c.FloorY

	cfg.Ramp.Origin = c.RampOrigin
	cfg.Ramp.Yaw = c.RampYaw
	cfg.Ramp.Length = c.RampLength
	cfg.Ramp.Shape = c.RampShape
	if c.RampHalfWidth > 0 {
		cfg.Ramp.HalfWidth = c.RampHalfWidth
	}

	cfg.Gate.Center = c.GateCenter
	cfg.Gate.Yaw = c.GateYaw
	if c.GateWidth > 0 {
		cfg.Gate.Width = c.GateWidth
	}
	if c.GateHeight > 0 {
		cfg.Gate.Height = c.GateHeight
	}
}
