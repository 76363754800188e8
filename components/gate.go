package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// GateData is a finite trigger plane
type GateData struct {
	Center     mgl64.Vec3
	Normal     mgl64.Vec3 // horizontal unit normal, forward side is positive
	Axis       mgl64.Vec3 // in-plane horizontal axis
	HalfWidth  float64
	HalfHeight float64

	PrevDistance float64
	HasPrev      bool

	JustCrossedForward  bool
	JustCrossedBackward bool
	ForwardCrossings    int
	BackwardCrossings   int
}

var Gate = donburi.NewComponentType[GateData]()
