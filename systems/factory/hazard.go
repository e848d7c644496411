package factory

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
)

// CreateHazard creates a zone that kills the player when touched
func CreateHazard(w donburi.World, r leveldata.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)

	obj := newObject(w, r, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	return hazard
}
