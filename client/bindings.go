package client

import (
	cfg "github.com/automoto/lightborne/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and gamepad buttons that trigger an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the left stick threshold for directional input.
var AnalogDeadzone = 0.25

// Bindings maps every action to its inputs.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionReset: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionSelectBlue: {
		Keys:                   []ebiten.Key{ebiten.Key1},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionSelectGreen: {
		Keys:                   []ebiten.Key{ebiten.Key2},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionSelectPurple: {
		Keys:                   []ebiten.Key{ebiten.Key3},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionSelectWhite: {
		Keys:                   []ebiten.Key{ebiten.Key4},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}
