package config

// ActionID represents a logical game action. Key bindings live with the
// client so the simulation stays free of any windowing dependency.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionReset
	ActionSelectBlue
	ActionSelectGreen
	ActionSelectPurple
	ActionSelectWhite
	ActionCount // Must be last - used for array sizing
)
