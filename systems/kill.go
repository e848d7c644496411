package systems

import (
	"log"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestKill asks for the player to die. Requests are admitted in
// StartKillAnimation, so any number per tick yields at most one sequence.
func RequestKill(w donburi.World, source KillSource) {
	KillPlayer.Publish(w, KillPlayerEvent{Source: source})
}

// QuickReset kills the player when the reset action was just pressed.
func QuickReset(e *ecs.ECS) {
	w := e.World
	input := GetOrCreateInput(w)
	if GetAction(input, cfg.ActionReset).JustPressed {
		RequestKill(w, KillSourceReset)
	}
}

// KillPlayerOnHurtIntersection kills the player on the first hazard the
// hurt box overlaps. One kill is requested per tick at most.
func KillPlayerOnHurtIntersection(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil {
		return
	}

	if hazards := intersecting(obj.Object, tags.ResolvHazard); len(hazards) > 0 {
		RequestKill(w, KillSourceHazard)
	}
}

// StartKillAnimation admits a kill request. Anything received while an
// animation is running is dropped.
func StartKillAnimation(w donburi.World, ev KillPlayerEvent) {
	state := GetOrCreateGameState(w)
	if state.Phase != components.PhasePlaying {
		if cfg.Debug.Log {
			log.Printf("kill (%s) dropped: game is %s", ev.Source, state.Phase)
		}
		return
	}

	seq := GetOrCreateRespawnSequence(w)
	err := BeginTransition(w, TransitionRequest{
		Duration: cfg.Respawn.TransitionDuration,
		Ease:     cfg.Respawn.Ease,
		Effect:   components.TransitionSlideToBlack,
		Owner:    components.OwnerRespawn,
	})
	if err != nil {
		log.Printf("kill (%s) not started: %v", ev.Source, err)
		return
	}

	state.Phase = components.PhaseAnimating
	state.Animation = components.AnimationRespawn
	seq.Stage = components.StageAwaitingSlideToBlack
	PlaySFX(w, cfg.SoundDeath)

	if cfg.Debug.Log {
		log.Printf("player killed (%s)", ev.Source)
	}
}
