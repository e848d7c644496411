package systems

import (
	"testing"

	"github.com/automoto/lightborne/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestWithPlayingCheck(t *testing.T) {
	w := donburi.NewWorld()
	calls := 0
	system := WithPlayingCheck(func(*ecs.ECS) { calls++ })
	e := ecs.NewECS(w)

	system(e)
	assert.Equal(t, 1, calls)

	GetOrCreateGameState(w).Phase = components.PhaseAnimating
	system(e)
	assert.Equal(t, 1, calls)
}

func TestGameStateSingleton(t *testing.T) {
	w := donburi.NewWorld()
	state := GetOrCreateGameState(w)
	assert.Equal(t, components.PhasePlaying, state.Phase)
	assert.Equal(t, components.StageIdle, GetOrCreateRespawnSequence(w).Stage)

	state.Phase = components.PhaseAnimating
	assert.Equal(t, components.PhaseAnimating, GetOrCreateGameState(w).Phase)
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.GameState)).Count(w))
}
