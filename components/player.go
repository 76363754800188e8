package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the local attribute bag kept next to the player's body handle
type PlayerData struct {
	Radius         float64
	Density        float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
}

var Player = donburi.NewComponentType[PlayerData]()
