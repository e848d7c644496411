package systems

import (
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayerMovement moves the player from the directional actions.
// Movement is free in both axes; the world is y-up.
func UpdatePlayerMovement(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	input := GetOrCreateInput(w)

	var dx, dy float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy++
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy--
	}

	movement := components.Movement.Get(playerEntry)
	movement.Velocity = math.Vec2{X: dx * cfg.Player.Speed, Y: dy * cfg.Player.Speed}

	player := components.Player.Get(playerEntry)
	player.Position.X += movement.Velocity.X
	player.Position.Y += movement.Velocity.Y
}
