package client

import (
	"fmt"
	"image/color"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/fonts"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/light"
	"github.com/automoto/lightborne/systems"
	"github.com/automoto/lightborne/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	backgroundColor   = color.RGBA{R: 12, G: 10, B: 24, A: 255}
	levelColor        = color.RGBA{R: 60, G: 56, B: 90, A: 255}
	currentLevelColor = color.RGBA{R: 140, G: 130, B: 200, A: 255}
	hazardColor       = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	flagColor         = color.RGBA{R: 240, G: 220, B: 80, A: 255}
	playerColor       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// LightColors is the on-screen tint of each light color.
var LightColors = [light.ColorCount]color.RGBA{
	light.Blue:   {R: 70, G: 130, B: 255, A: 255},
	light.Green:  {R: 70, G: 220, B: 110, A: 255},
	light.Purple: {R: 170, G: 90, B: 240, A: 255},
	light.White:  {R: 250, G: 250, B: 250, A: 255},
}

// view maps world space (y-up) to screen pixels for one frame.
type view struct {
	left, top float64
}

func newView(camera math.Vec2) view {
	return view{
		left: camera.X - cfg.Camera.ViewWidth/2,
		top:  camera.Y + cfg.Camera.ViewHeight/2,
	}
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x - v.left), float32(v.top - y)
}

func (v view) rect(r leveldata.Rect) (x, y, w, h float32) {
	x, y = v.point(r.MinX, r.MaxY)
	return x, y, float32(r.Width()), float32(r.Height())
}

// DrawWorld renders the simulation state: level outlines, hazards, visible
// crystal shards, start flags, the player, the HUD and the transition overlay.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	screen.Fill(backgroundColor)

	level, ok := systems.GetLevel(w)
	if !ok {
		return
	}
	v := newView(systems.GetOrCreateCamera(w).Position)

	for _, l := range level.World.Levels {
		clr := levelColor
		if l.IID == level.Current.LevelIID {
			clr = currentLevelColor
		}
		x, y, width, height := v.rect(l.Bounds)
		vector.StrokeRect(screen, x, y, width, height, 1, clr, false)
	}

	for _, h := range level.World.Hazards {
		x, y, width, height := v.rect(h)
		vector.DrawFilledRect(screen, x, y, width, height, hazardColor, false)
	}

	tags.CrystalShard.Each(w, func(e *donburi.Entry) {
		shard := components.CrystalShard.Get(e)
		if !shard.Visible {
			return
		}
		space, ok := components.Space.First(w)
		if !ok {
			return
		}
		obj := components.Object.Get(e)
		box := components.Space.Get(space).ToWorld(obj.X, obj.Y, obj.W, obj.H)
		x, y, width, height := v.rect(box)
		vector.DrawFilledRect(screen, x, y, width, height, LightColors[shard.Color], false)
	})

	for _, f := range level.World.StartFlags {
		x, y := v.point(f.X, f.Y)
		vector.DrawFilledRect(screen, x-1, y-8, 2, 8, flagColor, false)
	}

	if e, ok := tags.Player.First(w); ok {
		box := systems.PlayerHurtBox(components.Player.Get(e))
		x, y, width, height := v.rect(box)
		clr := playerColor
		if active, ok := components.LightInventory.Get(e).Active(); ok {
			clr = LightColors[active]
		}
		vector.DrawFilledRect(screen, x, y, width, height, clr, false)
	}

	drawHUD(screen, w, level)

	if t, ok := components.Transition.First(w); ok {
		if alpha := components.Transition.Get(t).Alpha; alpha > 0 {
			overlay := color.RGBA{A: uint8(alpha * 255)}
			vector.DrawFilledRect(screen, 0, 0, float32(cfg.Camera.ViewWidth), float32(cfg.Camera.ViewHeight), overlay, false)
		}
	}
}

func drawHUD(screen *ebiten.Image, w donburi.World, level *components.LevelData) {
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	inv := components.LightInventory.Get(e)

	// One swatch per color: filled when unlocked, outlined when only allowed.
	for i, c := range light.Colors {
		x := float32(4 + i*10)
		switch {
		case inv.Unlocked[c]:
			vector.DrawFilledRect(screen, x, 4, 8, 8, LightColors[c], false)
		case level.Current.AllowedColors[c]:
			vector.StrokeRect(screen, x, 4, 8, 8, 1, LightColors[c], false)
		}
	}
	text.Draw(screen, level.Current.LevelIID, fonts.HUD.Get(), 48, 12, playerColor)

	if !cfg.Debug.UI {
		return
	}
	state := systems.GetOrCreateGameState(w)
	seq := systems.GetOrCreateRespawnSequence(w)
	status := fmt.Sprintf("%s / %s", state.Phase, seq.Stage)
	if mods, ok := systems.GetOrCreateShardMods(w); ok {
		status += "  shards " + mods.Temporary.String()
	}
	text.Draw(screen, status, fonts.Debug.Get(), 4, 24, flagColor)
}
