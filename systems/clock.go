package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock records the elapsed time of the tick about to run. Long
// frames are clamped so a stall never integrates one huge step.
func AdvanceClock(ecs *ecs.ECS, dt float64) float64 {
	if dt <= 0 {
		dt = cfg.Physics.FixedStep
	}
	if dt > cfg.Physics.MaxFrameTime {
		dt = cfg.Physics.MaxFrameTime
	}

	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	clock := components.Clock.Get(entry)
	clock.Dt = dt
	clock.Tick++
	clock.Total += dt
	return dt
}
