package components

import (
	cfg "github.com/automoto/ballglide/config"
	"github.com/yohamta/donburi"
)

// LocomotionData is the player's locomotion state machine
type LocomotionData struct {
	CurrentState  cfg.LocomotionState
	PreviousState cfg.LocomotionState
	StateTimer    int // ticks spent in CurrentState

	Grounded      bool // recomputed from contacts every tick
	Submerged     bool // latched with hysteresis
	FlightEngaged bool // flipped by the flight toggle edge

	Transitions int // total state changes, for diagnostics
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// IsFlying reports whether the player is in Flying mode.
func (l *LocomotionData) IsFlying() bool {
	return l.CurrentState == cfg.Flying
}

// IsSubmerged reports whether the player is in Submerged mode.
func (l *LocomotionData) IsSubmerged() bool {
	return l.CurrentState == cfg.Submerged
}
