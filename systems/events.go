package systems

import (
	"github.com/automoto/lightborne/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// KillSource says what asked for the player to die.
type KillSource int

const (
	KillSourceReset KillSource = iota
	KillSourceHazard
)

func (s KillSource) String() string {
	if s == KillSourceHazard {
		return "hazard"
	}
	return "reset"
}

type KillPlayerEvent struct {
	Source KillSource
}

type TransitionFinishedEvent struct {
	Effect components.TransitionEffect
	Owner  components.TransitionOwner
}

// ResetReason says why the level is being reset.
type ResetReason int

const (
	ResetSwitch ResetReason = iota
	ResetRespawn
)

func (r ResetReason) String() string {
	if r == ResetRespawn {
		return "respawn"
	}
	return "switch"
}

// ResetLevelEvent is published once per level reset. LevelIID is the level
// being entered for a switch and the current level for a respawn.
type ResetLevelEvent struct {
	Reason   ResetReason
	LevelIID string
}

type CameraMoveVariant int

const (
	CameraInstant CameraMoveVariant = iota
	CameraAnimated
)

type CameraMoveEvent struct {
	To      math.Vec2
	Variant CameraMoveVariant
}

var (
	KillPlayer         = events.NewEventType[KillPlayerEvent]()
	TransitionFinished = events.NewEventType[TransitionFinishedEvent]()
	ResetLevel         = events.NewEventType[ResetLevelEvent]()
	CameraMove         = events.NewEventType[CameraMoveEvent]()
)

// SubscribeHandlers wires the event handlers into w. Call once per world.
func SubscribeHandlers(w donburi.World) {
	KillPlayer.Subscribe(w, StartKillAnimation)
	TransitionFinished.Subscribe(w, OnTransitionFinished)
	ResetLevel.Subscribe(w, HandleResetLevel)
	CameraMove.Subscribe(w, OnCameraMove)
}

func ProcessKillEvents(e *ecs.ECS) {
	KillPlayer.ProcessEvents(e.World)
}

func ProcessTransitionEvents(e *ecs.ECS) {
	TransitionFinished.ProcessEvents(e.World)
}

func ProcessResetEvents(e *ecs.ECS) {
	ResetLevel.ProcessEvents(e.World)
}

func ProcessCameraEvents(e *ecs.ECS) {
	CameraMove.ProcessEvents(e.World)
}
