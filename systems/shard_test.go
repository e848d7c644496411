package systems

import (
	"testing"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/light"
	"github.com/automoto/lightborne/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func shardVisibility(h *harness) map[light.Color]bool {
	out := map[light.Color]bool{}
	tags.CrystalShard.Each(h.w, func(e *donburi.Entry) {
		s := components.CrystalShard.Get(e)
		out[s.Color] = s.Visible
	})
	return out
}

func TestShardGrantsTemporaryColor(t *testing.T) {
	h := newHarness(t, testWorld(), "entry")

	h.moveTo(145, -50)
	h.tick()

	allowed := h.level().Current.AllowedColors
	assert.True(t, allowed[light.Green])
	assert.True(t, h.mods().Temporary[light.Green])
	assert.False(t, shardVisibility(h)[light.Green])
	assert.Equal(t, 1, h.sink.count(cfg.SoundShard))

	// Standing on the shard again changes nothing.
	before := *h.mods()
	h.tick()
	h.tick()
	assert.Equal(t, before, *h.mods())
	assert.Equal(t, allowed, h.level().Current.AllowedColors)
	assert.Equal(t, 1, h.sink.count(cfg.SoundShard))
	assert.True(t, h.inventory().Unlocked[light.Green])
}

func TestShardForAllowedColorIsNotTemporary(t *testing.T) {
	h := newHarness(t, testWorld(), "entry")

	h.moveTo(65, -50)
	h.tick()

	assert.True(t, h.level().Current.AllowedColors[light.Blue])
	assert.False(t, h.mods().Temporary[light.Blue])
	assert.False(t, shardVisibility(h)[light.Blue], "shard hides even when it grants nothing")
	assert.Equal(t, 0, h.sink.count(cfg.SoundShard))

	RequestKill(h.w, KillSourceReset)
	h.tickUntilPlaying()

	assert.True(t, h.level().Current.AllowedColors[light.Blue], "authored color survives the rollback")
	assert.True(t, shardVisibility(h)[light.Blue])
}

func TestRespawnRollsBackShardMods(t *testing.T) {
	h := newHarness(t, testWorld(), "entry")

	h.moveTo(145, -50)
	h.tick()
	assert.True(t, h.level().Current.AllowedColors[light.Green])

	RequestKill(h.w, KillSourceReset)
	h.tickUntilPlaying()

	assert.Equal(t, light.ColorMap{light.Blue: true}, h.level().Current.AllowedColors)
	assert.Equal(t, light.ColorMap{}, h.mods().Temporary)
	assert.True(t, shardVisibility(h)[light.Green])

	h.tick()
	assert.Equal(t, light.ColorMap{light.Blue: true}, h.inventory().Unlocked)
}

func TestResetShardsWithoutLevel(t *testing.T) {
	w := donburi.NewWorld()
	assert.NotPanics(t, func() { ResetShards(w) })
	assert.NotPanics(t, func() { OnPlayerIntersectShard(ecs.NewECS(w)) })
}

func TestShardModsLiveOnTheLevel(t *testing.T) {
	mods, ok := GetOrCreateShardMods(donburi.NewWorld())
	assert.False(t, ok)
	assert.Nil(t, mods)

	h := newHarness(t, testWorld(), "entry")
	entry, ok := components.Level.First(h.w)
	require.True(t, ok)
	assert.True(t, entry.HasComponent(components.ShardMods))
	assert.Same(t, components.ShardMods.Get(entry), h.mods())
}
