package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	From     math.Vec2
	To       math.Vec2
	Move     *gween.Tween // progress 0..1 of an animated move, nil when idle
}

var Camera = donburi.NewComponentType[CameraData]()
