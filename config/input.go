package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionToggleFlight
	ActionToggleFreeRoam
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionForward:        {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionBack:           {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionLeft:           {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionRight:          {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionToggleFlight:   {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionToggleFreeRoam: {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionOrbitLeft:      {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionOrbitRight:     {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionOrbitUp:        {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionOrbitDown:      {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionZoomIn:         {Keys: []ebiten.Key{ebiten.KeyEqual}},
			ActionZoomOut:        {Keys: []ebiten.Key{ebiten.KeyMinus}},
		},
	}
}
