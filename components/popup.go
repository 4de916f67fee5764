package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SavePopupData drives the time-limited "Game Saved!" confirmation.
// Alpha runs a linear 1 -> 0 tween over the popup duration.
type SavePopupData struct {
	Active bool
	Alpha  float32
	Tween  *gween.Tween
}

var SavePopup = donburi.NewComponentType[SavePopupData]()
