package systems

import (
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Intersects reports whether two objects overlap. Resolv's cell check is
// the broad phase; boxes that only share an edge do not intersect.
func Intersects(a, b *resolv.Object) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	check := a.Check(0, 0)
	if check == nil {
		return false
	}
	found := false
	for _, o := range check.Objects {
		if o == b {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// intersecting returns the objects with the given tag that overlap obj.
func intersecting(obj *resolv.Object, tag string) []*resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if Intersects(obj, o) {
			out = append(out, o)
		}
	}
	return out
}

// PlayerHurtBox returns the world-space box the player is hit with.
func PlayerHurtBox(player *components.PlayerData) leveldata.Rect {
	hw, hh := cfg.Player.CollisionWidth/2, cfg.Player.CollisionHeight/2
	return leveldata.Rect{
		MinX: player.Position.X - hw,
		MinY: player.Position.Y - hh,
		MaxX: player.Position.X + hw,
		MaxY: player.Position.Y + hh,
	}
}

// UpdateCollisions moves the player's hurt box in the resolv space to
// match the player's position.
func UpdateCollisions(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	syncPlayerObject(w, playerEntry)
}

func syncPlayerObject(w donburi.World, playerEntry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil {
		return
	}
	x, y, _, _ := space.ToSpace(PlayerHurtBox(components.Player.Get(playerEntry)))
	obj.X = x
	obj.Y = y
	obj.Update()
}
