package systems

import (
	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameState returns the singleton GameState component, creating if needed.
func GetOrCreateGameState(w donburi.World) *components.GameStateData {
	return components.GameState.Get(gameStateEntry(w))
}

// GetOrCreateRespawnSequence returns the respawn stage stored next to the game state.
func GetOrCreateRespawnSequence(w donburi.World) *components.RespawnSequenceData {
	return components.RespawnSequence.Get(gameStateEntry(w))
}

func gameStateEntry(w donburi.World) *donburi.Entry {
	if entry, ok := components.GameState.First(w); ok {
		return entry
	}
	entry := archetypes.GameState.Spawn(w)
	components.GameState.SetValue(entry, components.GameStateData{
		Phase:     components.PhasePlaying,
		Animation: components.AnimationNone,
	})
	return entry
}

// IsPlaying reports whether normal simulation should run.
func IsPlaying(w donburi.World) bool {
	return GetOrCreateGameState(w).Phase == components.PhasePlaying
}

// WithPlayingCheck wraps a system so it only runs while the game is in
// the Playing phase.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e.World) {
			return
		}
		system(e)
	}
}
