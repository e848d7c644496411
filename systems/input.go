package systems

import (
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// FeedInput records this tick's pressed actions. The client fills pressed
// from the keyboard, the headless runner from a script.
func FeedInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	input := GetOrCreateInput(w)
	input.Previous = input.Current
	input.Current = pressed
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputSource provides the actions pressed this tick.
type InputSource interface {
	Poll() [cfg.ActionCount]bool
}

// NewInputSystem returns a system that feeds src into the input buffer.
// A nil source presses nothing.
func NewInputSystem(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		var pressed [cfg.ActionCount]bool
		if src != nil {
			pressed = src.Poll()
		}
		FeedInput(e.World, pressed)
	}
}
