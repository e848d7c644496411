package components

import (
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/light"
	"github.com/yohamta/donburi"
)

// CurrentLevel describes the level the player is in. AllowedColors starts
// as the level's authored baseline and may be widened by crystal shards.
type CurrentLevel struct {
	LevelIID      string
	AllowedColors light.ColorMap
	Bounds        leveldata.Rect
}

type LevelData struct {
	Current CurrentLevel
	World   *leveldata.World
}

var Level = donburi.NewComponentType[LevelData]()
