package systems

import (
	"math"

	"github.com/automoto/ballglide/components"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGate detects the tick in which the player passes through a gate.
// A forward crossing arms the ramp. Detection is suspended while the ramp
// is active. Must run AFTER UpdateRamp.
func UpdateGate(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}
	playerEntry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	if body.Handle == 0 {
		return
	}
	ramp := components.Ramp.Get(playerEntry)
	position := engine.Translation(body.Handle)
	// Every gate sees the ramp as it was at the start of the tick.
	suspended := ramp.Active

	components.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		gate.JustCrossedForward = false
		gate.JustCrossedBackward = false
		if suspended {
			return
		}

		distance, forward, backward := gateCrossing(*gate, position)
		gate.PrevDistance = distance
		gate.HasPrev = true

		switch {
		case forward:
			gate.JustCrossedForward = true
			gate.ForwardCrossings++
			if !ramp.Active {
				radius := components.Player.Get(playerEntry).Radius
				EnterRamp(engine, body.Handle, ramp, factory.RampFrame(), radius)
			}
		case backward:
			gate.JustCrossedBackward = true
			gate.BackwardCrossings++
		}
	})
}

// gateCrossing returns the horizontal signed distance of p to the gate
// plane and whether it crossed since the previous tick within the gate's
// bounds.
func gateCrossing(g components.GateData, p mgl64.Vec3) (distance float64, forward, backward bool) {
	offset := p.Sub(g.Center)
	flat := gamemath.Flatten(offset)
	distance = flat.Dot(g.Normal)
	if !g.HasPrev {
		return distance, false, false
	}
	if math.Abs(offset.Y()) > g.HalfHeight || math.Abs(flat.Dot(g.Axis)) > g.HalfWidth {
		return distance, false, false
	}
	forward = g.PrevDistance < 0 && distance >= 0
	backward = g.PrevDistance >= 0 && distance < 0
	return distance, forward, backward
}
