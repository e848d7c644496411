package systems

import (
	"errors"
	"time"

	"github.com/automoto/lightborne/archetypes"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrTransitionActive is returned when a transition is requested while
// another one is still running.
var ErrTransitionActive = errors.New("transition already active")

type TransitionRequest struct {
	Duration time.Duration
	Ease     ease.TweenFunc
	Effect   components.TransitionEffect
	Owner    components.TransitionOwner
}

// GetOrCreateTransition returns the singleton Transition component, creating if needed.
func GetOrCreateTransition(w donburi.World) *components.TransitionData {
	if _, ok := components.Transition.First(w); !ok {
		archetypes.Transition.Spawn(w)
	}

	ent, _ := components.Transition.First(w)
	return components.Transition.Get(ent)
}

// BeginTransition starts the overlay tween. At most one transition runs
// at a time; a second request is rejected and changes nothing.
func BeginTransition(w donburi.World, req TransitionRequest) error {
	tr := GetOrCreateTransition(w)
	if tr.Active {
		return ErrTransitionActive
	}

	from, to := float32(0), float32(1)
	if req.Effect == components.TransitionSlideFromBlack {
		from, to = 1, 0
	}
	easing := req.Ease
	if easing == nil {
		easing = ease.Linear
	}

	tr.Active = true
	tr.Effect = req.Effect
	tr.Owner = req.Owner
	tr.Alpha = float64(from)
	tr.Tween = gween.New(from, to, float32(req.Duration.Seconds()), easing)
	return nil
}

// UpdateTransition advances the running transition by one tick. When it
// completes the driver goes idle before TransitionFinished is published,
// so a completion handler may start the next transition.
func UpdateTransition(e *ecs.ECS) {
	w := e.World
	tr := GetOrCreateTransition(w)
	if !tr.Active {
		return
	}

	alpha, finished := tr.Tween.Update(float32(cfg.Simulation.Step().Seconds()))
	tr.Alpha = float64(alpha)
	if !finished {
		return
	}

	ev := TransitionFinishedEvent{Effect: tr.Effect, Owner: tr.Owner}
	tr.Active = false
	tr.Tween = nil
	tr.Effect = components.TransitionNone
	tr.Owner = components.OwnerNone
	TransitionFinished.Publish(w, ev)
}
