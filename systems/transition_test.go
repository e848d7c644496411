package systems

import (
	"testing"
	"time"

	"github.com/automoto/lightborne/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestBeginTransitionRejectsSecond(t *testing.T) {
	w := donburi.NewWorld()
	req := TransitionRequest{
		Duration: 100 * time.Millisecond,
		Ease:     ease.InOutSine,
		Effect:   components.TransitionSlideToBlack,
		Owner:    components.OwnerRespawn,
	}
	require.NoError(t, BeginTransition(w, req))
	first := *GetOrCreateTransition(w)

	err := BeginTransition(w, TransitionRequest{Duration: time.Second, Effect: components.TransitionSlideFromBlack})
	assert.ErrorIs(t, err, ErrTransitionActive)
	assert.Equal(t, first, *GetOrCreateTransition(w))
}

func TestTransitionPublishesFinishedOnce(t *testing.T) {
	w := donburi.NewWorld()
	var finished []TransitionFinishedEvent
	TransitionFinished.Subscribe(w, func(_ donburi.World, ev TransitionFinishedEvent) {
		finished = append(finished, ev)
	})

	require.NoError(t, BeginTransition(w, TransitionRequest{
		Duration: 100 * time.Millisecond,
		Effect:   components.TransitionSlideToBlack,
		Owner:    components.OwnerRespawn,
	}))
	tr := GetOrCreateTransition(w)
	assert.Equal(t, 0.0, tr.Alpha)
	e := ecs.NewECS(w)

	ticks := 0
	for ; ticks < 100 && tr.Active; ticks++ {
		UpdateTransition(e)
		ProcessTransitionEvents(e)
	}
	// 100ms at 60 ticks per second.
	assert.InDelta(t, 6, ticks, 1)
	assert.Equal(t, 1.0, tr.Alpha)
	require.Len(t, finished, 1)
	assert.Equal(t, TransitionFinishedEvent{Effect: components.TransitionSlideToBlack, Owner: components.OwnerRespawn}, finished[0])

	for i := 0; i < 10; i++ {
		UpdateTransition(e)
		ProcessTransitionEvents(e)
	}
	assert.Len(t, finished, 1)
}

func TestSlideFromBlackRunsBackwards(t *testing.T) {
	w := donburi.NewWorld()
	require.NoError(t, BeginTransition(w, TransitionRequest{
		Duration: 50 * time.Millisecond,
		Effect:   components.TransitionSlideFromBlack,
	}))
	tr := GetOrCreateTransition(w)
	assert.Equal(t, 1.0, tr.Alpha)
	e := ecs.NewECS(w)

	UpdateTransition(e)
	assert.Less(t, tr.Alpha, 1.0)
	for i := 0; i < 100 && tr.Active; i++ {
		UpdateTransition(e)
	}
	assert.False(t, tr.Active)
	assert.Equal(t, 0.0, tr.Alpha)
	assert.Equal(t, components.TransitionNone, tr.Effect)
}

func TestGetOrCreateTransitionSpawnsOnce(t *testing.T) {
	w := donburi.NewWorld()
	tr := GetOrCreateTransition(w)
	assert.False(t, tr.Active)
	assert.Equal(t, components.TransitionNone, tr.Effect)

	assert.Same(t, tr, GetOrCreateTransition(w))
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.Transition)).Count(w))
}
