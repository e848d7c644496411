package components

import (
	"github.com/automoto/lightborne/light"
	"github.com/yohamta/donburi"
)

// ShardModsData records which allowed colors came from crystal shards
// rather than from the level itself.
type ShardModsData struct {
	Temporary light.ColorMap
}

var ShardMods = donburi.NewComponentType[ShardModsData]()

type CrystalShardData struct {
	Color   light.Color
	Visible bool
}

var CrystalShard = donburi.NewComponentType[CrystalShardData]()
