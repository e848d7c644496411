package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Hazard       = donburi.NewTag().SetName("Hazard")
	CrystalShard = donburi.NewTag().SetName("CrystalShard")
	StartFlag    = donburi.NewTag().SetName("StartFlag")
)

// Resolv tags for collision queries
const (
	ResolvPlayer = "Player"
	ResolvHazard = "hazard"
	ResolvShard  = "shard"
)
