package factory

import (
	"fmt"

	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel creates the level singleton with startIID as the current level.
func CreateLevel(w donburi.World, world *leveldata.World, startIID string) (*donburi.Entry, error) {
	lvl, ok := world.Level(startIID)
	if !ok {
		return nil, fmt.Errorf("start level %q not found", startIID)
	}

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Current: components.CurrentLevel{
			LevelIID:      lvl.IID,
			AllowedColors: lvl.AllowedColors,
			Bounds:        lvl.Bounds,
		},
		World: world,
	})
	return level, nil
}

// StartLevelIID picks the level to start in: the saved one if it still
// exists, otherwise the configured index.
func StartLevelIID(world *leveldata.World, saved string) string {
	if _, ok := world.Level(saved); ok && saved != "" {
		return saved
	}
	idx := cfg.Level.StartIndex
	if idx < 0 || idx >= len(world.Levels) {
		idx = 0
	}
	return world.Levels[idx].IID
}

// CreateWorld populates w from a loaded world file and places the player
// on the start flag of startIID.
func CreateWorld(w donburi.World, world *leveldata.World, startIID string) error {
	CreateSpace(w, world.Bounds)

	if _, err := CreateLevel(w, world, startIID); err != nil {
		return err
	}

	var spawn *leveldata.StartFlag
	for i, f := range world.StartFlags {
		CreateStartFlag(w, f)
		if f.LevelIID == startIID && spawn == nil {
			spawn = &world.StartFlags[i]
		}
	}
	if spawn == nil {
		return fmt.Errorf("level %q has no start flag", startIID)
	}

	for _, h := range world.Hazards {
		CreateHazard(w, h)
	}
	for _, s := range world.Shards {
		CreateCrystalShard(w, s)
	}

	pos := math.Vec2{X: spawn.X, Y: spawn.Y + cfg.Respawn.Epsilon}
	CreatePlayer(w, pos)
	CreateCamera(w, pos)
	archetypes.GameState.Spawn(w)
	archetypes.Transition.Spawn(w)

	return nil
}
