package systems

import (
	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRecords folds the tick's ramp exit and flight time into the run
// records and saves them when a flight ends or a ramp run completes.
func UpdateRecords(ecs *ecs.ECS) {
	recordsEntry, ok := components.Records.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	records := components.Records.Get(recordsEntry)
	loco := components.Locomotion.Get(playerEntry)
	ramp := components.Ramp.Get(playerEntry)
	flight := components.Flight.Get(playerEntry)

	if ramp.JustExited {
		records.RampRuns++
		if speed := ramp.ExitVelocity.Len(); speed > records.BestRampExitSpeed {
			records.BestRampExitSpeed = speed
		}
		records.Dirty = true
	}
	if loco.IsFlying() && flight.Elapsed > records.LongestFlightSeconds {
		records.LongestFlightSeconds = flight.Elapsed
	}

	flightEnded := loco.StateTimer == 0 && loco.PreviousState == cfg.Flying && !loco.IsFlying()
	if flightEnded {
		records.Dirty = true
	}
	if !records.Dirty || loco.IsFlying() || ramp.Active {
		return
	}

	records.Dirty = false
	_ = SaveRecords(&SavedRecords{
		BestRampExitSpeed:    records.BestRampExitSpeed,
		LongestFlightSeconds: records.LongestFlightSeconds,
		RampRuns:             records.RampRuns,
	})
}
