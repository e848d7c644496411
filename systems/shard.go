package systems

import (
	"log"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateShardMods returns the temporary unlock flags. They live on the
// level entity.
func GetOrCreateShardMods(w donburi.World) (*components.ShardModsData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.ShardMods.Get(entry), true
}

// OnPlayerIntersectShard grants the color of every crystal shard the
// player touches. A color the level already allows is not marked as
// temporary; touching the same shard again changes nothing.
func OnPlayerIntersectShard(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil {
		return
	}
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	mods, _ := GetOrCreateShardMods(w)

	for _, o := range intersecting(obj.Object, tags.ResolvShard) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		shard := components.CrystalShard.Get(entry)
		if !level.Current.AllowedColors[shard.Color] {
			mods.Temporary[shard.Color] = true
			level.Current.AllowedColors[shard.Color] = true
			PlaySFX(w, cfg.SoundShard)
			if cfg.Debug.Log {
				log.Printf("shard unlocked %s in %s", shard.Color, level.Current.LevelIID)
			}
		}
		shard.Visible = false
	}
}

// ResetShards shows every shard again and removes the colors they granted.
func ResetShards(w donburi.World) {
	tags.CrystalShard.Each(w, func(e *donburi.Entry) {
		components.CrystalShard.Get(e).Visible = true
	})

	mods, ok := GetOrCreateShardMods(w)
	if !ok {
		return
	}
	level, _ := GetLevel(w)
	for c, temporary := range mods.Temporary {
		if temporary {
			level.Current.AllowedColors[c] = false
		}
		mods.Temporary[c] = false
	}
}
