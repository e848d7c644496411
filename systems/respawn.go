package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ErrNoStartFlag means a level has nowhere to respawn the player. This is a
// level authoring bug, so ResetPlayerOnKill panics with it.
var ErrNoStartFlag = errors.New("level has no start flag")

// OnTransitionFinished advances the respawn sequence. Transitions owned by
// someone else, or that do not match the stage being waited on, are ignored.
func OnTransitionFinished(w donburi.World, ev TransitionFinishedEvent) {
	if ev.Owner != components.OwnerRespawn {
		return
	}

	seq := GetOrCreateRespawnSequence(w)
	switch {
	case seq.Stage == components.StageAwaitingSlideToBlack && ev.Effect == components.TransitionSlideToBlack:
		AfterSlideToBlack(w)
	case seq.Stage == components.StageAwaitingSlideFromBlack && ev.Effect == components.TransitionSlideFromBlack:
		AfterSlideFromBlack(w)
	}
}

// AfterSlideToBlack runs while the screen is fully black: it asks for the
// level reset and starts revealing the screen again.
func AfterSlideToBlack(w donburi.World) {
	var iid string
	if level, ok := GetLevel(w); ok {
		iid = level.Current.LevelIID
	}
	ResetLevel.Publish(w, ResetLevelEvent{Reason: ResetRespawn, LevelIID: iid})

	GetOrCreateRespawnSequence(w).Stage = components.StageAwaitingSlideFromBlack
	err := BeginTransition(w, TransitionRequest{
		Duration: cfg.Respawn.TransitionDuration,
		Ease:     cfg.Respawn.Ease,
		Effect:   components.TransitionSlideFromBlack,
		Owner:    components.OwnerRespawn,
	})
	if err != nil {
		log.Printf("slide from black not started: %v", err)
		AfterSlideFromBlack(w)
	}
}

// AfterSlideFromBlack hands control back to the player.
func AfterSlideFromBlack(w donburi.World) {
	state := GetOrCreateGameState(w)
	state.Phase = components.PhasePlaying
	state.Animation = components.AnimationNone
	GetOrCreateRespawnSequence(w).Stage = components.StageIdle

	if cfg.Debug.Log {
		log.Printf("respawn finished")
	}
}

// FindStartFlag returns the start flag of the given level.
func FindStartFlag(w donburi.World, levelIID string) (*components.StartFlagData, bool) {
	var found *components.StartFlagData
	tags.StartFlag.Each(w, func(e *donburi.Entry) {
		if found != nil {
			return
		}
		flag := components.StartFlag.Get(e)
		if flag.LevelIID == levelIID {
			found = flag
		}
	})
	return found, found != nil
}

// ResetPlayerOnKill puts the player back on the current level's start
// flag. It only reacts to respawn resets.
func ResetPlayerOnKill(w donburi.World, ev ResetLevelEvent) {
	if ev.Reason != ResetRespawn {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	level, ok := GetLevel(w)
	if !ok {
		return
	}

	iid := level.Current.LevelIID
	flag, ok := FindStartFlag(w, iid)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrNoStartFlag, iid))
	}

	pos := math.Vec2{X: flag.Position.X, Y: flag.Position.Y + cfg.Respawn.Epsilon}
	components.Player.Get(playerEntry).Position = pos
	components.Movement.SetValue(playerEntry, components.MovementData{})
	syncPlayerObject(w, playerEntry)

	CameraMove.Publish(w, CameraMoveEvent{
		To:      CameraPositionFromLevel(level.Current.Bounds, pos),
		Variant: CameraInstant,
	})
}
