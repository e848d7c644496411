package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Position math.Vec2 // world space, center of the hurt box
}

var Player = donburi.NewComponentType[PlayerData]()

// MovementData is the player's per-tick motion state. The zero value is the
// default a reset restores.
type MovementData struct {
	Velocity math.Vec2
}

var Movement = donburi.NewComponentType[MovementData]()
