package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mgrift/squarewalk/config"
)

// ShowSavePopup starts the "Game Saved!" confirmation fade. A save while
// the popup is still visible restarts it at full opacity.
func ShowSavePopup(e *ecs.ECS) {
	popup := GetOrCreateSavePopup(e)
	popup.Active = true
	popup.Alpha = 1
	popup.Tween = gween.New(1, 0, float32(cfg.UI.PopupDuration), ease.Linear)
}

// UpdateSavePopup advances the fade by one tick.
func UpdateSavePopup(e *ecs.ECS) {
	popup := GetOrCreateSavePopup(e)
	if !popup.Active || popup.Tween == nil {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	alpha, done := popup.Tween.Update(dt)
	popup.Alpha = alpha
	if done {
		popup.Active = false
	}
}
