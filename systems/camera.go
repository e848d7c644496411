package systems

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// GetOrCreateCamera returns the singleton Camera component, creating if needed.
func GetOrCreateCamera(w donburi.World) *components.CameraData {
	if _, ok := components.Camera.First(w); !ok {
		archetypes.Camera.Spawn(w)
	}

	ent, _ := components.Camera.First(w)
	return components.Camera.Get(ent)
}

// CameraPositionFromLevel centers the view on target, kept inside the
// level so the view never shows outside of it. A level smaller than the
// view is centered on that axis.
func CameraPositionFromLevel(bounds leveldata.Rect, target math.Vec2) math.Vec2 {
	if !cfg.Camera.ClampToBounds {
		return target
	}
	halfW := cfg.Camera.ViewWidth/2 - cfg.Camera.ViewportPadding
	halfH := cfg.Camera.ViewHeight/2 - cfg.Camera.ViewportPadding
	cx, cy := bounds.Center()
	return math.Vec2{
		X: clampAxis(target.X, bounds.MinX+halfW, bounds.MaxX-halfW, cx),
		Y: clampAxis(target.Y, bounds.MinY+halfH, bounds.MaxY-halfH, cy),
	}
}

func clampAxis(v, lo, hi, center float64) float64 {
	if lo > hi {
		return center
	}
	return max(lo, min(hi, v))
}

// OnCameraMove handles CameraMove events. Instant moves also cancel an
// animated move in progress.
func OnCameraMove(w donburi.World, ev CameraMoveEvent) {
	camera := GetOrCreateCamera(w)
	if ev.Variant == CameraInstant {
		camera.Position = ev.To
		camera.Move = nil
		return
	}
	camera.From = camera.Position
	camera.To = ev.To
	camera.Move = gween.New(0, 1, float32(cfg.Camera.SwitchDuration.Seconds()), cfg.Camera.SwitchEase)
}

// UpdateCamera applies queued camera moves, advances an animated move,
// and otherwise follows the player while playing.
func UpdateCamera(e *ecs.ECS) {
	ProcessCameraEvents(e)
	w := e.World

	camera := GetOrCreateCamera(w)
	if camera.Move != nil {
		t, finished := camera.Move.Update(float32(cfg.Simulation.Step().Seconds()))
		p := float64(t)
		camera.Position = math.Vec2{
			X: camera.From.X + (camera.To.X-camera.From.X)*p,
			Y: camera.From.Y + (camera.To.Y-camera.From.Y)*p,
		}
		if finished {
			camera.Position = camera.To
			camera.Move = nil
		}
		return
	}

	if !IsPlaying(w) {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return // no player, skip camera update
	}
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	camera.Position = CameraPositionFromLevel(level.Current.Bounds, components.Player.Get(playerEntry).Position)
}
