package components

import (
	"github.com/automoto/lightborne/light"
	"github.com/yohamta/donburi"
)

// LightInventoryData is what the player can currently shoot.
type LightInventoryData struct {
	Unlocked   light.ColorMap
	Current    light.Color
	HasCurrent bool
}

// Active returns the selected color, if any.
func (d *LightInventoryData) Active() (light.Color, bool) {
	return d.Current, d.HasCurrent
}

func (d *LightInventoryData) SetActive(c light.Color) {
	d.Current = c
	d.HasCurrent = true
}

func (d *LightInventoryData) ClearActive() {
	d.Current = 0
	d.HasCurrent = false
}

var LightInventory = donburi.NewComponentType[LightInventoryData]()
