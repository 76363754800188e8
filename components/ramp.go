package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RampData is the constrained curve state. Only meaningful while Active.
type RampData struct {
	Active bool

	Progress        float64 // x along the curve, [0, L]
	ArcSpeed        float64 // signed speed along the tangent
	Lateral         float64 // offset along the ramp's lateral axis
	LateralVelocity float64
	Ticks           int

	// One-tick flags, cleared at the start of the next ramp update
	JustEntered bool
	JustExited  bool

	EntryArcSpeed float64
	ExitVelocity  mgl64.Vec3
}

var Ramp = donburi.NewComponentType[RampData]()
