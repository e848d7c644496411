package systems

import (
	"testing"

	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestCameraPositionFromLevel(t *testing.T) {
	halfW, halfH := cfg.Camera.ViewWidth/2, cfg.Camera.ViewHeight/2
	big := leveldata.Rect{MinX: 0, MinY: -400, MaxX: 1000, MaxY: 0}

	cases := []struct {
		name   string
		bounds leveldata.Rect
		target math.Vec2
		want   math.Vec2
	}{
		{"inside", big, math.Vec2{X: 500, Y: -200}, math.Vec2{X: 500, Y: -200}},
		{"clamped_left_top", big, math.Vec2{X: 10, Y: -5}, math.Vec2{X: halfW, Y: -halfH}},
		{"clamped_right_bottom", big, math.Vec2{X: 990, Y: -395}, math.Vec2{X: 1000 - halfW, Y: -400 + halfH}},
		{"small_level_centered", leveldata.Rect{MinX: 0, MinY: -100, MaxX: 200, MaxY: 0}, math.Vec2{X: 20, Y: -20}, math.Vec2{X: 100, Y: -50}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CameraPositionFromLevel(c.bounds, c.target))
		})
	}
}

func TestAnimatedCameraMoveReachesTarget(t *testing.T) {
	w := donburi.NewWorld()
	GetOrCreateCamera(w).Position = math.Vec2{X: 0, Y: 0}

	OnCameraMove(w, CameraMoveEvent{To: math.Vec2{X: 100, Y: -40}, Variant: CameraAnimated})

	cam := GetOrCreateCamera(w)
	e := ecs.NewECS(w)
	UpdateCamera(e)
	assert.Greater(t, cam.Position.X, 0.0)
	assert.Less(t, cam.Position.X, 100.0)

	for i := 0; i < 600 && cam.Move != nil; i++ {
		UpdateCamera(e)
	}
	assert.Nil(t, cam.Move)
	assert.Equal(t, math.Vec2{X: 100, Y: -40}, cam.Position)
}

func TestInstantCameraMoveCancelsAnimation(t *testing.T) {
	w := donburi.NewWorld()
	OnCameraMove(w, CameraMoveEvent{To: math.Vec2{X: 100}, Variant: CameraAnimated})
	OnCameraMove(w, CameraMoveEvent{To: math.Vec2{X: -30, Y: 7}, Variant: CameraInstant})

	cam := GetOrCreateCamera(w)
	assert.Nil(t, cam.Move)
	assert.Equal(t, math.Vec2{X: -30, Y: 7}, cam.Position)
}
