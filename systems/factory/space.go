package factory

import (
	"math"

	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceMargin is how far past the world bounds, in cells, collisions still work.
const spaceMargin = 4

// CreateSpace creates the resolv space covering bounds plus a margin.
func CreateSpace(w donburi.World, bounds leveldata.Rect) *donburi.Entry {
	cell := cfg.Space.CellSize
	pad := float64(cell * spaceMargin)
	width := int(math.Ceil(bounds.Width() + 2*pad))
	height := int(math.Ceil(bounds.Height() + 2*pad))

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cell, cell),
		OriginX: bounds.MinX - pad,
		OriginY: bounds.MaxY + pad,
	})
	return space
}

// newObject creates a resolv object for a world box and adds it to the space.
func newObject(w donburi.World, r leveldata.Rect, tag string) *resolv.Object {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		panic("factory: create the space before any collision object")
	}
	space := components.Space.Get(spaceEntry)

	x, y, width, height := space.ToSpace(r)
	obj := resolv.NewObject(x, y, width, height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	space.Add(obj)
	return obj
}
