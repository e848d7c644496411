package scenes

import cfg "github.com/automoto/lightborne/config"

// ScriptedInput presses actions at given ticks. Each entry holds the
// actions for one tick, so a key press spans a single tick.
type ScriptedInput struct {
	Script map[uint64][]cfg.ActionID
	tick   uint64
}

func (s *ScriptedInput) Poll() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, a := range s.Script[s.tick] {
		pressed[a] = true
	}
	s.tick++
	return pressed
}
