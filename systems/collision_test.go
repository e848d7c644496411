package systems

import (
	"testing"

	"github.com/automoto/lightborne/components"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestIntersects(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	a := resolv.NewObject(10, 10, 20, 20)
	overlapping := resolv.NewObject(25, 25, 10, 10)
	touching := resolv.NewObject(30, 10, 10, 10)
	far := resolv.NewObject(200, 200, 10, 10)
	outside := resolv.NewObject(12, 12, 4, 4) // never added to the space
	space.Add(a, overlapping, touching, far)

	assert.True(t, Intersects(a, overlapping))
	assert.True(t, Intersects(overlapping, a))
	assert.False(t, Intersects(a, touching), "shared edge is not an intersection")
	assert.False(t, Intersects(a, far))
	assert.False(t, Intersects(a, a))
	assert.False(t, Intersects(a, outside))
	assert.False(t, Intersects(a, nil))
}

func TestUpdateCollisionsFollowsPlayer(t *testing.T) {
	h := newHarness(t, testWorld(), "entry")
	obj := components.Object.Get(h.player())

	components.Player.Get(h.player()).Position = math.Vec2{X: 210, Y: -50}
	UpdateCollisions(h.ecs)

	hazards := intersecting(obj.Object, "hazard")
	assert.Len(t, hazards, 1)

	box := PlayerHurtBox(components.Player.Get(h.player()))
	space, _ := components.Space.First(h.w)
	got := components.Space.Get(space).ToWorld(obj.X, obj.Y, obj.W, obj.H)
	assert.InDelta(t, box.MinX, got.MinX, 1e-9)
	assert.InDelta(t, box.MinY, got.MinY, 1e-9)
	assert.InDelta(t, box.MaxX, got.MaxX, 1e-9)
	assert.InDelta(t, box.MaxY, got.MaxY, 1e-9)
}
