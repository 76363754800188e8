package components

import (
	"github.com/yohamta/donburi"
)

// FlightData is the attitude controller and last aerodynamic readout
type FlightData struct {
	PitchTarget float64
	RollTarget  float64
	Pitch       float64
	Roll        float64
	Yaw         float64

	AngleOfAttack   float64
	LiftCoefficient float64
	Airspeed        float64
	Elapsed         float64 // seconds in the current flight
}

var Flight = donburi.NewComponentType[FlightData]()
