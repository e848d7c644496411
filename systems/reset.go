package systems

import "github.com/yohamta/donburi"

// HandleResetLevel is the single subscriber for ResetLevel. Rollback runs
// in dependency order: shard mods are undone against the old level, the
// level context is replaced (switch only), the inventory is reset against
// the new allowed colors, and finally the player is respawned.
func HandleResetLevel(w donburi.World, ev ResetLevelEvent) {
	ResetShards(w)
	if ev.Reason == ResetSwitch {
		applyLevelSwitch(w, ev.LevelIID)
	}
	ResetPlayerOnLevelSwitch(w)
	ResetPlayerOnKill(w, ev)
}
