package components

import "github.com/yohamta/donburi"

// GamePhase gates which systems run.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseAnimating
)

func (p GamePhase) String() string {
	if p == PhaseAnimating {
		return "animating"
	}
	return "playing"
}

// AnimationPhase names the animation that owns the Animating phase.
type AnimationPhase int

const (
	AnimationNone AnimationPhase = iota
	AnimationRespawn
)

type GameStateData struct {
	Phase     GamePhase
	Animation AnimationPhase
}

var GameState = donburi.NewComponentType[GameStateData]()

// SequenceStage is where the respawn sequence is waiting.
type SequenceStage int

const (
	StageIdle SequenceStage = iota
	StageAwaitingSlideToBlack
	StageAwaitingSlideFromBlack
)

func (s SequenceStage) String() string {
	switch s {
	case StageAwaitingSlideToBlack:
		return "awaiting_slide_to_black"
	case StageAwaitingSlideFromBlack:
		return "awaiting_slide_from_black"
	default:
		return "idle"
	}
}

type RespawnSequenceData struct {
	Stage SequenceStage
}

var RespawnSequence = donburi.NewComponentType[RespawnSequenceData]()
