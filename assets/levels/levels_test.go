package levels

import (
	"testing"

	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedWorldLoads(t *testing.T) {
	world, err := leveldata.Load(FS(""), cfg.Level.File)
	require.NoError(t, err)
	require.Len(t, world.Levels, 3)

	// Every level has a place to respawn.
	flagged := map[string]bool{}
	for _, f := range world.StartFlags {
		flagged[f.LevelIID] = true
	}
	for _, level := range world.Levels {
		assert.True(t, flagged[level.IID], "level %s has no start flag", level.IID)
	}
	assert.NotEmpty(t, world.Hazards)
	assert.Len(t, world.Shards, 3)
}

func TestDiskFS(t *testing.T) {
	world, err := leveldata.Load(FS("."), "world.tmx")
	require.NoError(t, err)
	assert.Equal(t, "cave_entry", world.Levels[0].IID)
}
