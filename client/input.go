package client

import (
	cfg "github.com/automoto/lightborne/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// DeviceInput polls the keyboard and any standard-layout gamepads.
type DeviceInput struct {
	gamepadIDs []ebiten.GamepadID // reused between polls
}

func (d *DeviceInput) Poll() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into the directional actions
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		stickDirections(&pressed, horizontal, vertical)
	}

	return pressed
}

// stickDirections sets the move actions for a stick position. Stick y grows
// downward.
func stickDirections(pressed *[cfg.ActionCount]bool, horizontal, vertical float64) {
	if horizontal < -AnalogDeadzone {
		pressed[cfg.ActionMoveLeft] = true
	}
	if horizontal > AnalogDeadzone {
		pressed[cfg.ActionMoveRight] = true
	}
	if vertical < -AnalogDeadzone {
		pressed[cfg.ActionMoveUp] = true
	}
	if vertical > AnalogDeadzone {
		pressed[cfg.ActionMoveDown] = true
	}
}
