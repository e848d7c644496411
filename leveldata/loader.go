package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/lightborne/light"
	"github.com/lafriks/go-tiled"
)

// Object group names in the world TMX file.
const (
	GroupLevels     = "Levels"
	GroupStartFlags = "StartFlags"
	GroupHazards    = "Hazards"
	GroupShards     = "CrystalShards"
)

// Load parses a world TMX file. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (tools and hot reload).
func Load(fsys fs.FS, tmxPath string) (*World, error) {
	worldMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	world := &World{}
	for _, og := range worldMap.ObjectGroups {
		switch og.Name {
		case GroupLevels:
			for _, o := range og.Objects {
				iid := o.Properties.GetString("iid")
				if iid == "" {
					iid = o.Name
				}
				if iid == "" {
					return nil, fmt.Errorf("%s: level object %d has no iid", tmxPath, o.ID)
				}
				if _, dup := world.Level(iid); dup {
					return nil, fmt.Errorf("%s: duplicate level iid %q", tmxPath, iid)
				}
				allowed, err := light.ParseColorList(o.Properties.GetString("allowed_colors"))
				if err != nil {
					return nil, fmt.Errorf("%s: level %q: %w", tmxPath, iid, err)
				}
				world.Levels = append(world.Levels, Level{
					IID:           iid,
					Bounds:        RectFromTiled(o.X, o.Y, o.Width, o.Height),
					AllowedColors: allowed,
				})
			}
		case GroupStartFlags:
			for _, o := range og.Objects {
				world.StartFlags = append(world.StartFlags, StartFlag{
					LevelIID: o.Properties.GetString("level_iid"),
					X:        o.X,
					Y:        -o.Y,
				})
			}
		case GroupHazards:
			for _, o := range og.Objects {
				world.Hazards = append(world.Hazards, RectFromTiled(o.X, o.Y, o.Width, o.Height))
			}
		case GroupShards:
			for _, o := range og.Objects {
				color, err := light.ParseColor(o.Properties.GetString("light_color"))
				if err != nil {
					return nil, fmt.Errorf("%s: crystal shard %d: %w", tmxPath, o.ID, err)
				}
				world.Shards = append(world.Shards, Shard{
					Color:  color,
					Bounds: RectFromTiled(o.X, o.Y, o.Width, o.Height),
				})
			}
		}
	}

	if len(world.Levels) == 0 {
		return nil, fmt.Errorf("%s: no objects in the %s group", tmxPath, GroupLevels)
	}

	flagged := make(map[string]bool, len(world.StartFlags))
	for _, flag := range world.StartFlags {
		if _, ok := world.Level(flag.LevelIID); !ok {
			return nil, fmt.Errorf("%s: start flag references unknown level %q", tmxPath, flag.LevelIID)
		}
		if flagged[flag.LevelIID] {
			return nil, fmt.Errorf("%s: level %q has more than one start flag", tmxPath, flag.LevelIID)
		}
		flagged[flag.LevelIID] = true
	}

	world.Bounds = world.Levels[0].Bounds
	for _, lvl := range world.Levels[1:] {
		world.Bounds = world.Bounds.Union(lvl.Bounds)
	}

	return world, nil
}
