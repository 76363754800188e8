package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Gate    = donburi.NewTag().SetName("Gate")
	Terrain = donburi.NewTag().SetName("Terrain")
)
