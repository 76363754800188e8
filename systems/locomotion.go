package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion classifies the player into exactly one locomotion state,
// runs transition side effects on the edge and applies that state's model.
// Must run AFTER UpdateContacts and BEFORE UpdateRamp.
func UpdateLocomotion(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}
	input := getOrCreateInput(ecs)
	dt := tickDt(ecs)
	forward, right := cameraBasis(ecs)

	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Handle == 0 {
			return
		}
		loco := components.Locomotion.Get(e)
		ramp := components.Ramp.Get(e)
		flight := components.Flight.Get(e)

		y := engine.Translation(body.Handle).Y()
		loco.Submerged = submergedLatch(loco.Submerged, y)

		// The ramp owns the body until it releases it.
		if !ramp.Active && !loco.Submerged && GetAction(input, cfg.ActionToggleFlight).JustPressed {
			loco.FlightEngaged = !loco.FlightEngaged
		}
		if loco.Submerged {
			loco.FlightEngaged = false
		}

		next := classifyLocomotion(loco.Submerged, loco.FlightEngaged, loco.Grounded)
		if next != loco.CurrentState {
			exitLocomotionState(engine, body.Handle, loco.CurrentState, flight)
			enterLocomotionState(engine, body.Handle, next, flight)
			loco.PreviousState = loco.CurrentState
			loco.CurrentState = next
			loco.StateTimer = 0
			loco.Transitions++
		} else {
			loco.StateTimer++
		}

		if ramp.Active {
			return
		}

		move := moveDirection(input, forward, right)
		switch loco.CurrentState {
		case cfg.Grounded:
			engine.ApplyTorqueImpulse(body.Handle, groundedTorque(move, cfg.Player.TorqueStrength*dt))
		case cfg.Airborne:
			engine.ApplyImpulse(body.Handle, airborneImpulse(move, cfg.Player.AirControl*dt))
		case cfg.Flying:
			// Forces come from UpdateFlight.
		case cfg.Submerged:
			v, w, lift := submergedStep(
				engine.Linvel(body.Handle),
				engine.Angvel(body.Handle),
				y,
				engine.Mass(body.Handle),
				dt,
			)
			engine.SetLinvel(body.Handle, v)
			engine.SetAngvel(body.Handle, w)
			engine.ApplyImpulse(body.Handle, lift)
		}
	})
}

// submergedLatch applies the one-sided hysteresis band: enter at or below
// sea level, leave only once above sea level plus the band.
func submergedLatch(submerged bool, y float64) bool {
	if submerged {
		return y <= cfg.Ocean.SeaLevel+cfg.Ocean.Band
	}
	return y <= cfg.Ocean.SeaLevel
}

// classifyLocomotion resolves the state in priority order
// Submerged > Flying > Grounded > Airborne.
func classifyLocomotion(submerged, flightEngaged, grounded bool) cfg.LocomotionState {
	switch {
	case submerged:
		return cfg.Submerged
	case flightEngaged:
		return cfg.Flying
	case grounded:
		return cfg.Grounded
	default:
		return cfg.Airborne
	}
}

func exitLocomotionState(engine physics.Engine, h physics.BodyHandle, state cfg.LocomotionState, flight *components.FlightData) {
	switch state {
	case cfg.Flying:
		engine.SetGravityScale(h, 1)
		flight.PitchTarget = 0
		flight.RollTarget = 0
	case cfg.Grounded, cfg.Airborne, cfg.Submerged:
	}
}

func enterLocomotionState(engine physics.Engine, h physics.BodyHandle, state cfg.LocomotionState, flight *components.FlightData) {
	switch state {
	case cfg.Flying:
		v := engine.Linvel(h)
		engine.SetAngvel(h, mgl64.Vec3{})
		engine.SetGravityScale(h, 0)

		pitch := gamemath.ClampFloat(gamemath.FlightPathAngle(v), -cfg.Flight.MaxPitch, cfg.Flight.MaxPitch)
		flight.PitchTarget = pitch
		flight.Pitch = pitch
		flight.RollTarget = 0
		flight.Roll = 0
		if yaw, ok := gamemath.HeadingOf(v, cfg.Flight.MinHeadingSpeed); ok {
			flight.Yaw = yaw
		}
		flight.Elapsed = 0
	case cfg.Grounded, cfg.Airborne, cfg.Submerged:
	}
}

// moveDirection combines held W/A/S/D into a horizontal unit vector, or the
// zero vector when nothing (or opposing keys) is held.
func moveDirection(input *components.InputData, forward, right mgl64.Vec3) mgl64.Vec3 {
	f := axis(input, cfg.ActionForward, cfg.ActionBack)
	r := axis(input, cfg.ActionRight, cfg.ActionLeft)
	dir := gamemath.Flatten(forward.Mul(f).Add(right.Mul(r)))
	dir, _ = gamemath.SafeNormalize(dir, mgl64.Vec3{})
	return dir
}

// groundedTorque rolls the ball toward dir: the torque axis is the
// horizontal axis perpendicular to it.
func groundedTorque(dir mgl64.Vec3, strength float64) mgl64.Vec3 {
	return gamemath.Up.Cross(dir).Mul(strength)
}

// airborneImpulse pushes along dir with no vertical component.
func airborneImpulse(dir mgl64.Vec3, strength float64) mgl64.Vec3 {
	return gamemath.Flatten(dir).Mul(strength)
}

// submergedStep damps both velocities and returns the buoyancy impulse for
// the clamped depth below sea level.
func submergedStep(v, w mgl64.Vec3, y, mass, dt float64) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	v = v.Mul(cfg.Ocean.WaterDamping)
	w = w.Mul(cfg.Ocean.WaterDamping)
	depth := gamemath.ClampFloat(cfg.Ocean.SeaLevel-y, 0, cfg.Ocean.MaxBuoyancyDepth)
	lift := gamemath.Up.Mul(cfg.Ocean.BuoyancyStrength * depth * mass * dt)
	return v, w, lift
}
