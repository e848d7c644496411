package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TransitionEffect int

const (
	TransitionNone TransitionEffect = iota
	TransitionSlideToBlack
	TransitionSlideFromBlack
)

func (e TransitionEffect) String() string {
	switch e {
	case TransitionSlideToBlack:
		return "slide_to_black"
	case TransitionSlideFromBlack:
		return "slide_from_black"
	default:
		return "none"
	}
}

// TransitionOwner identifies who gets the completion callback.
type TransitionOwner int

const (
	OwnerNone TransitionOwner = iota
	OwnerRespawn
)

// TransitionData drives the full-screen overlay. Alpha is 0 when the
// screen is fully visible and 1 when it is black.
type TransitionData struct {
	Active bool
	Effect TransitionEffect
	Owner  TransitionOwner
	Tween  *gween.Tween
	Alpha  float64
}

var Transition = donburi.NewComponentType[TransitionData]()
