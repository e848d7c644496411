package systems

import (
	"fmt"
	"log"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level singleton, if the world has one.
func GetLevel(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// EnterLevel replaces the current level context with the authored data of
// the given level.
func EnterLevel(w donburi.World, iid string) error {
	level, ok := GetLevel(w)
	if !ok {
		return fmt.Errorf("enter level %q: no level entity", iid)
	}
	if level.World == nil {
		return fmt.Errorf("enter level %q: no world loaded", iid)
	}
	lvl, ok := level.World.Level(iid)
	if !ok {
		return fmt.Errorf("enter level %q: unknown level", iid)
	}

	level.Current = components.CurrentLevel{
		LevelIID:      lvl.IID,
		AllowedColors: lvl.AllowedColors,
		Bounds:        lvl.Bounds,
	}
	return nil
}

// SwitchLevel asks for a level switch reset into the given level.
func SwitchLevel(w donburi.World, iid string) {
	ResetLevel.Publish(w, ResetLevelEvent{Reason: ResetSwitch, LevelIID: iid})
}

// UpdateLevelSwitch switches level when the player has walked out of the
// current level and into another one.
func UpdateLevelSwitch(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	level, ok := GetLevel(w)
	if !ok || level.World == nil {
		return
	}

	pos := components.Player.Get(playerEntry).Position
	if level.Current.Bounds.Contains(pos.X, pos.Y) {
		return
	}
	next, ok := level.World.LevelAt(pos.X, pos.Y)
	if !ok || next.IID == level.Current.LevelIID {
		return
	}
	SwitchLevel(w, next.IID)
}

// applyLevelSwitch runs inside the reset dispatcher, after the shard
// rollback and before the inventory reset.
func applyLevelSwitch(w donburi.World, iid string) {
	if err := EnterLevel(w, iid); err != nil {
		log.Printf("level switch: %v", err)
		return
	}
	level, _ := GetLevel(w)
	PlaySFX(w, cfg.SoundLevelSwitch)

	if playerEntry, ok := tags.Player.First(w); ok {
		pos := components.Player.Get(playerEntry).Position
		CameraMove.Publish(w, CameraMoveEvent{
			To:      CameraPositionFromLevel(level.Current.Bounds, pos),
			Variant: CameraAnimated,
		})
	}

	if cfg.Debug.Log {
		log.Printf("entered level %s (allowed %s)", iid, level.Current.AllowedColors)
	}
}
