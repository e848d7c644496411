// Package leveldata provides TMX world parsing for the simulation and the client.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
//
// Tiled works in y-down pixel coordinates. Everything in this package is
// already converted to world coordinates, which are y-up (worldY = -tiledY).
package leveldata

import "github.com/automoto/lightborne/light"

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromTiled converts a Tiled object box (top-left origin, y-down) to world space.
func RectFromTiled(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: -(y + h), MaxX: x + w, MaxY: -y}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the middle point of the box.
func (r Rect) Center() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Contains reports whether the point lies inside the box (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Level is one room of the world.
type Level struct {
	IID           string
	Bounds        Rect
	AllowedColors light.ColorMap // author-defined baseline
}

// StartFlag marks where the player respawns inside a level.
type StartFlag struct {
	LevelIID string
	X, Y     float64
}

// Shard is a crystal shard that temporarily unlocks a color.
type Shard struct {
	Color  light.Color
	Bounds Rect
}

// World holds everything parsed from a world TMX file.
type World struct {
	Levels     []Level
	StartFlags []StartFlag
	Hazards    []Rect
	Shards     []Shard
	Bounds     Rect // union of all level bounds
}

// Level returns the level with the given identity.
func (w *World) Level(iid string) (*Level, bool) {
	for i := range w.Levels {
		if w.Levels[i].IID == iid {
			return &w.Levels[i], true
		}
	}
	return nil, false
}

// LevelAt returns the first level whose bounds contain the point.
func (w *World) LevelAt(x, y float64) (*Level, bool) {
	for i := range w.Levels {
		if w.Levels[i].Bounds.Contains(x, y) {
			return &w.Levels[i], true
		}
	}
	return nil, false
}
