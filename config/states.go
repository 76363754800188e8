package config

// LocomotionState is the movement model currently governing the player body.
type LocomotionState int

const (
	Grounded LocomotionState = iota
	Airborne
	Flying
	Submerged
)

func (s LocomotionState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Flying:
		return "flying"
	case Submerged:
		return "submerged"
	}
	return "unknown"
}

// CameraMode is the camera behavior resolved for the current tick.
type CameraMode int

const (
	CameraDefault CameraMode = iota
	CameraRamp
	CameraFlight
	CameraOcean
	CameraFreeRoam
)

func (m CameraMode) String() string {
	switch m {
	case CameraDefault:
		return "Default"
	case CameraRamp:
		return "Ramp"
	case CameraFlight:
		return "Flight"
	case CameraOcean:
		return "Ocean"
	case CameraFreeRoam:
		return "FreeRoam"
	}
	return "Unknown"
}
