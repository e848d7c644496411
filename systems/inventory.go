package systems

import (
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/light"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var selectActions = [light.ColorCount]cfg.ActionID{
	light.Blue:   cfg.ActionSelectBlue,
	light.Green:  cfg.ActionSelectGreen,
	light.Purple: cfg.ActionSelectPurple,
	light.White:  cfg.ActionSelectWhite,
}

// ResetPlayerOnLevelSwitch puts the inventory and movement back to their
// defaults. The selected color survives only if the current level still
// allows it.
func ResetPlayerOnLevelSwitch(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	inv := components.LightInventory.Get(playerEntry)
	active, hadActive := inv.Active()

	*inv = components.LightInventoryData{}
	components.Movement.SetValue(playerEntry, components.MovementData{})

	level, ok := GetLevel(w)
	if ok && hadActive && level.Current.AllowedColors[active] {
		inv.SetActive(active)
	}
}

// SyncInventory copies the level's allowed colors into the inventory and
// drops a selection that is no longer unlocked.
func SyncInventory(e *ecs.ECS) {
	w := e.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	inv := components.LightInventory.Get(playerEntry)
	inv.Unlocked = level.Current.AllowedColors
	if c, ok := inv.Active(); ok && !inv.Unlocked[c] {
		inv.ClearActive()
	}
}

// SelectColor toggles the selected color. Locked colors are ignored.
// It reports whether the selection changed.
func SelectColor(w donburi.World, c light.Color) bool {
	if !c.Valid() {
		return false
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	inv := components.LightInventory.Get(playerEntry)
	if !inv.Unlocked[c] {
		return false
	}
	if active, ok := inv.Active(); ok && active == c {
		inv.ClearActive()
		return true
	}
	inv.SetActive(c)
	return true
}

// UpdateColorSelection applies color selection actions pressed this tick.
func UpdateColorSelection(e *ecs.ECS) {
	w := e.World
	input := GetOrCreateInput(w)
	for c, action := range selectActions {
		if GetAction(input, action).JustPressed {
			SelectColor(w, light.Color(c))
		}
	}
}
