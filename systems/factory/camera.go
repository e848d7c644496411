package factory

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, pos math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Position: pos})
	return camera
}
