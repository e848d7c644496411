package factory

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	"github.com/automoto/lightborne/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateStartFlag(w donburi.World, f leveldata.StartFlag) *donburi.Entry {
	flag := archetypes.StartFlag.Spawn(w)
	components.StartFlag.SetValue(flag, components.StartFlagData{
		LevelIID: f.LevelIID,
		Position: math.Vec2{X: f.X, Y: f.Y},
	})
	return flag
}
