package systems

import "github.com/yohamta/donburi/ecs"

// AddSystems registers the simulation on e in tick order. Input is read
// first and queued sounds are played last.
func AddSystems(e *ecs.ECS, input InputSource, sink AudioSink) *ecs.ECS {
	e.AddSystem(NewInputSystem(input))

	// Playing only
	e.AddSystem(WithPlayingCheck(QuickReset))
	e.AddSystem(WithPlayingCheck(UpdatePlayerMovement))
	e.AddSystem(WithPlayingCheck(SyncInventory))
	e.AddSystem(WithPlayingCheck(UpdateColorSelection))

	e.AddSystem(UpdateCollisions)

	// Triggers
	e.AddSystem(WithPlayingCheck(KillPlayerOnHurtIntersection))
	e.AddSystem(WithPlayingCheck(OnPlayerIntersectShard))
	e.AddSystem(WithPlayingCheck(UpdateLevelSwitch))

	// Kill admission, transition callbacks, then rollback
	e.AddSystem(ProcessKillEvents)
	e.AddSystem(UpdateTransition)
	e.AddSystem(ProcessTransitionEvents)
	e.AddSystem(ProcessResetEvents)

	e.AddSystem(UpdateCamera)
	e.AddSystem(NewAudioSystem(sink))
	return e
}
