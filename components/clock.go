package components

import "github.com/yohamta/donburi"

// ClockData is the elapsed time of the current tick (singleton component)
type ClockData struct {
	Dt    float64
	Tick  uint64
	Total float64
}

var Clock = donburi.NewComponentType[ClockData]()
