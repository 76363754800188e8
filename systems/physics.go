package systems

import (
	"github.com/automoto/ballglide/components"
	"github.com/automoto/ballglide/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the physics world by the tick's elapsed time.
func UpdatePhysics(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}
	engine.Step(tickDt(ecs))
}

// UpdateContacts recomputes the grounded flag from scratch. A single
// contact pair on the player collider this tick marks it grounded.
func UpdateContacts(ecs *ecs.ECS) {
	engine := readyEngine(ecs)
	if engine == nil {
		return
	}

	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		loco := components.Locomotion.Get(e)
		loco.Grounded = false
		if body.Collider == 0 {
			return
		}
		engine.ForEachContactPair(body.Collider, func(_ physics.ContactPair) {
			loco.Grounded = true
		})
	})
}
