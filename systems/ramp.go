package systems

import (
	"log"
	"math"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/gamemath"
	"github.com/automoto/ballglide/physics"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRamp integrates the constrained ramp phase and writes the result
// into the body. Must run AFTER UpdateLocomotion and BEFORE UpdateGate.
func UpdateRamp(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}
	dt := tickDt(ecs)
	frame := factory.RampFrame()

	components.Ramp.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		ramp := components.Ramp.Get(e)
		ramp.JustEntered = false
		ramp.JustExited = false
		if !ramp.Active || body.Handle == 0 {
			return
		}
		radius := components.Player.Get(e).Radius

		next, reachedEnd := stepRamp(frame.Curve, *ramp, cfg.Physics.Gravity, rampLateralLimit(radius), cfg.Ramp.Substeps, dt)
		next.Ticks++
		*ramp = next

		velocity := placeOnRamp(engine, body.Handle, frame, *ramp, radius)

		switch {
		case reachedEnd:
			releaseRamp(ecs, engine, body.Handle, ramp, velocity)
		case cfg.Ramp.MaxTicks > 0 && ramp.Ticks >= cfg.Ramp.MaxTicks:
			log.Printf("Warning: ramp released after %d ticks at progress %.2f", ramp.Ticks, ramp.Progress)
			releaseRamp(ecs, engine, body.Handle, ramp, velocity)
		}
	})
}

// EnterRamp projects the body onto the curve and hands it to the ramp
// solver. Progress comes from the contact point under the ball center, so a
// ball already resting on the curve is not moved. Position and velocity are
// snapped to the curve so the tangential speed is exactly the projection of
// the incoming velocity.
func EnterRamp(engine physics.Engine, h physics.BodyHandle, ramp *components.RampData, frame gamemath.RampFrame, radius float64) {
	p := engine.Translation(h)
	v := engine.Linvel(h)

	x, lateral := frame.ProjectBall(p, radius)
	limit := rampLateralLimit(radius)

	*ramp = components.RampData{
		Active:          true,
		Progress:        x,
		ArcSpeed:        v.Dot(frame.Tangent(x)),
		Lateral:         gamemath.ClampFloat(lateral, -limit, limit),
		LateralVelocity: v.Dot(frame.Lateral),
		JustEntered:     true,
	}
	ramp.EntryArcSpeed = ramp.ArcSpeed

	engine.SetBodyType(h, physics.Kinematic)
	placeOnRamp(engine, h, frame, *ramp, radius)
}

// stepRamp advances the arc-length model by dt in substeps. It reports
// whether progress reached the end of the curve; the remaining substeps of
// that tick are dropped.
func stepRamp(c gamemath.Curve, s components.RampData, g, lateralLimit float64, substeps int, dt float64) (components.RampData, bool) {
	if substeps < 1 {
		substeps = 1
	}
	h := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		s.ArcSpeed += c.TangentialAccel(s.Progress, g) * h

		s.Lateral += s.LateralVelocity * h
		if math.Abs(s.Lateral) > lateralLimit {
			s.Lateral = math.Copysign(lateralLimit, s.Lateral)
			s.LateralVelocity = 0
		}

		s.Progress += s.ArcSpeed * h / c.Stretch(s.Progress)
		if s.Progress <= 0 {
			s.Progress = 0
			s.ArcSpeed = math.Abs(s.ArcSpeed)
		}
		if s.Progress >= c.Length {
			s.Progress = c.Length
			return s, true
		}
	}
	return s, false
}

// placeOnRamp writes the ramp state into the body and returns the world velocity.
func placeOnRamp(engine physics.Engine, h physics.BodyHandle, frame gamemath.RampFrame, s components.RampData, radius float64) mgl64.Vec3 {
	velocity := frame.Velocity(s.Progress, s.ArcSpeed, s.LateralVelocity)
	engine.SetTranslation(h, frame.Position(s.Progress, s.Lateral, radius))
	engine.SetLinvel(h, velocity)
	if radius > 0 {
		engine.SetAngvel(h, frame.Normal(s.Progress).Cross(velocity).Mul(1/radius))
	}
	return velocity
}

// releaseRamp returns the body to free dynamics with the last computed
// velocity and clears the gate memory so the next approach starts fresh.
func releaseRamp(ecs *ecs.ECS, engine physics.Engine, h physics.BodyHandle, ramp *components.RampData, velocity mgl64.Vec3) {
	engine.SetBodyType(h, physics.Dynamic)
	engine.SetLinvel(h, velocity)

	ramp.Active = false
	ramp.JustExited = true
	ramp.ExitVelocity = velocity

	components.Gate.Each(ecs.World, func(e *donburi.Entry) {
		components.Gate.Get(e).HasPrev = false
	})
}

func rampLateralLimit(radius float64) float64 {
	return math.Max(cfg.Ramp.HalfWidth-radius, 0)
}
