package factory

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its hurt box centered on pos.
func CreatePlayer(w donburi.World, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	hw, hh := cfg.Player.CollisionWidth/2, cfg.Player.CollisionHeight/2
	obj := newObject(w, leveldata.Rect{
		MinX: pos.X - hw,
		MinY: pos.Y - hh,
		MaxX: pos.X + hw,
		MaxY: pos.Y + hh,
	}, tags.ResolvPlayer)
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Position: pos})
	components.Movement.SetValue(player, components.MovementData{})
	components.LightInventory.SetValue(player, components.LightInventoryData{})

	return player
}
