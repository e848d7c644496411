package factory

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
)

// CreateCrystalShard creates a visible shard with collision detection
func CreateCrystalShard(w donburi.World, s leveldata.Shard) *donburi.Entry {
	shard := archetypes.CrystalShard.Spawn(w)

	obj := newObject(w, s.Bounds, tags.ResolvShard)
	obj.Data = shard
	components.Object.SetValue(shard, components.ObjectData{Object: obj})
	components.CrystalShard.SetValue(shard, components.CrystalShardData{
		Color:   s.Color,
		Visible: true,
	})

	return shard
}
