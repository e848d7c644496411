package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type StartFlagData struct {
	LevelIID string
	Position math.Vec2
}

var StartFlag = donburi.NewComponentType[StartFlagData]()
