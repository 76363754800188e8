package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSnapshot is the pressed state of every action for one tick.
type InputSnapshot [cfg.ActionCount]bool

// PollKeyboard reads the bound keys into a snapshot.
func PollKeyboard() InputSnapshot {
	var snapshot InputSnapshot
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snapshot[actionID] = true
			}
		}
	}
	return snapshot
}

// PushInput stores a new snapshot in the Input component.
// Must run BEFORE the ecs systems of the tick.
func PushInput(ecs *ecs.ECS, snapshot InputSnapshot) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = snapshot
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// axis returns +1, -1 or 0 for a pair of opposing held actions.
func axis(input *components.InputData, positive, negative cfg.ActionID) float64 {
	v := 0.0
	if input.Current[positive] {
		v++
	}
	if input.Current[negative] {
		v--
	}
	return v
}
