package components

import "github.com/yohamta/donburi"

// RecordsData holds the best values of the session and of saved runs
type RecordsData struct {
	BestRampExitSpeed    float64
	LongestFlightSeconds float64
	RampRuns             int
	Dirty                bool // changed since the last save
}

var Records = donburi.NewComponentType[RecordsData]()
