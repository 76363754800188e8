package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flightControls is the held attitude input for one tick: +1 raises the
// nose or banks right.
type flightControls struct {
	Pitch float64
	Roll  float64
}

// UpdateFlight applies the aerodynamic model to a flying player.
// Must run AFTER UpdateGate.
func UpdateFlight(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}
	input := getOrCreateInput(ecs)
	dt := tickDt(ecs)

	components.Flight.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		loco := components.Locomotion.Get(e)
		if body.Handle == 0 || !loco.IsFlying() || components.Ramp.Get(e).Active {
			return
		}
		flight := components.Flight.Get(e)

		controls := flightControls{
			Pitch: axis(input, cfg.ActionBack, cfg.ActionForward),
			Roll:  axis(input, cfg.ActionRight, cfg.ActionLeft),
		}
		next, force := flightStep(*flight, controls, engine.Linvel(body.Handle), engine.Mass(body.Handle), cfg.Physics.Gravity, dt)
		*flight = next

		engine.ApplyImpulse(body.Handle, force.Mul(dt))
		engine.SetAngvel(body.Handle, mgl64.Vec3{})
		engine.SetRotation(body.Handle, gamemath.Attitude(flight.Yaw, flight.Pitch, flight.Roll))
	})
}

// flightStep updates the attitude controller and returns the summed force
// of lift, drag and gravity on a body with velocity v.
func flightStep(f components.FlightData, in flightControls, v mgl64.Vec3, mass, g, dt float64) (components.FlightData, mgl64.Vec3) {
	c := cfg.Flight

	f.PitchTarget = gamemath.ClampFloat(f.PitchTarget+in.Pitch*c.PitchRate, -c.MaxPitch, c.MaxPitch)
	f.RollTarget = gamemath.ClampFloat(f.RollTarget+in.Roll*c.RollRate, -c.MaxRoll, c.MaxRoll)
	f.Pitch = gamemath.Approach(f.Pitch, f.PitchTarget, c.AttitudeSmoothing, dt)
	f.Roll = gamemath.Approach(f.Roll, f.RollTarget, c.AttitudeSmoothing, dt)
	if yaw, ok := gamemath.HeadingOf(v, c.MinHeadingSpeed); ok {
		f.Yaw = yaw
	}
	f.Elapsed += dt

	speed := v.Len()
	f.Airspeed = speed
	f.AngleOfAttack = gamemath.AngleOfAttack(f.Pitch, v, c.MaxAngleOfAttack)
	f.LiftCoefficient = gamemath.LiftCoefficient(f.AngleOfAttack, c.StallAngle, c.PostStallDecay, c.MaxLiftCoefficient)

	force := mgl64.Vec3{0, -mass * g, 0}
	q := gamemath.DynamicPressure(c.AirDensity, speed)

	if liftDir, ok := gamemath.LiftDirection(v, f.Roll); ok {
		lift := q * c.WingArea * f.LiftCoefficient * gamemath.StallBlend(speed, c.MinSpeed, c.StallSpeed)
		force = force.Add(liftDir.Mul(lift))
	}
	if dir, ok := gamemath.SafeNormalize(v, mgl64.Vec3{}); ok {
		drag := q * c.WingArea * gamemath.DragCoefficient(f.LiftCoefficient, c.ZeroLiftDrag, c.InducedDrag)
		force = force.Sub(dir.Mul(drag))
	}
	return f, force
}
