package systems

import (
	"testing"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/light"
	"github.com/automoto/lightborne/systems/factory"
	"github.com/automoto/lightborne/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type recordingSink struct {
	played []cfg.SoundID
}

func (s *recordingSink) PlaySFX(sound cfg.SoundID, _ float64) {
	s.played = append(s.played, sound)
}

func (s *recordingSink) count(sound cfg.SoundID) int {
	n := 0
	for _, p := range s.played {
		if p == sound {
			n++
		}
	}
	return n
}

// testWorld is two side-by-side levels. "entry" allows blue and has a
// green shard and a hazard; "deep" allows blue and purple.
func testWorld() *leveldata.World {
	return &leveldata.World{
		Levels: []leveldata.Level{
			{IID: "entry", Bounds: leveldata.Rect{MinX: 0, MinY: -160, MaxX: 320, MaxY: 0}, AllowedColors: light.ColorMap{light.Blue: true}},
			{IID: "deep", Bounds: leveldata.Rect{MinX: 320, MinY: -160, MaxX: 640, MaxY: 0}, AllowedColors: light.ColorMap{light.Blue: true, light.Purple: true}},
		},
		StartFlags: []leveldata.StartFlag{
			{LevelIID: "entry", X: 100, Y: -50},
			{LevelIID: "deep", X: 400, Y: -50},
		},
		Hazards: []leveldata.Rect{
			{MinX: 200, MinY: -60, MaxX: 220, MaxY: -40},
		},
		Shards: []leveldata.Shard{
			{Color: light.Green, Bounds: leveldata.Rect{MinX: 140, MinY: -60, MaxX: 150, MaxY: -40}},
			{Color: light.Blue, Bounds: leveldata.Rect{MinX: 60, MinY: -60, MaxX: 70, MaxY: -40}},
		},
		Bounds: leveldata.Rect{MinX: 0, MinY: -160, MaxX: 640, MaxY: 0},
	}
}

// heldKeys is an InputSource that presses whatever the next tick asks for.
type heldKeys struct {
	pressed [cfg.ActionCount]bool
}

func (k *heldKeys) Poll() [cfg.ActionCount]bool {
	return k.pressed
}

type harness struct {
	t     *testing.T
	w     donburi.World
	ecs   *ecs.ECS
	keys  *heldKeys
	sink  *recordingSink
	store *MemoryStore
}

func newHarness(t *testing.T, world *leveldata.World, start string) *harness {
	t.Helper()
	w := donburi.NewWorld()
	require.NoError(t, factory.CreateWorld(w, world, start))
	SubscribeHandlers(w)

	h := &harness{t: t, w: w, keys: &heldKeys{}, sink: &recordingSink{}, store: &MemoryStore{}}
	ResetLevel.Subscribe(w, NewProgressHandler(h.store))
	h.ecs = AddSystems(ecs.NewECS(w), h.keys, h.sink)
	return h
}

// tick runs one step of the game pipeline with the given actions held.
func (h *harness) tick(pressed ...cfg.ActionID) {
	h.keys.pressed = [cfg.ActionCount]bool{}
	for _, a := range pressed {
		h.keys.pressed[a] = true
	}
	h.ecs.Update()
}

// tickUntilPlaying steps until the respawn sequence has fully finished.
func (h *harness) tickUntilPlaying() int {
	h.t.Helper()
	for i := 1; i <= 600; i++ {
		h.tick()
		if IsPlaying(h.w) && GetOrCreateRespawnSequence(h.w).Stage == components.StageIdle {
			return i
		}
	}
	h.t.Fatal("respawn sequence never finished")
	return 0
}

func (h *harness) player() *donburi.Entry {
	e, ok := tags.Player.First(h.w)
	require.True(h.t, ok)
	return e
}

func (h *harness) position() math.Vec2 {
	return components.Player.Get(h.player()).Position
}

// moveTo teleports the player and refreshes the hurt box.
func (h *harness) moveTo(x, y float64) {
	components.Player.Get(h.player()).Position = math.Vec2{X: x, Y: y}
	UpdateCollisions(h.ecs)
}

func (h *harness) level() *components.LevelData {
	level, ok := GetLevel(h.w)
	require.True(h.t, ok)
	return level
}

func (h *harness) inventory() *components.LightInventoryData {
	return components.LightInventory.Get(h.player())
}

func (h *harness) mods() *components.ShardModsData {
	mods, ok := GetOrCreateShardMods(h.w)
	require.True(h.t, ok)
	return mods
}
