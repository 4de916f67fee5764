package components

import "github.com/yohamta/donburi"

// SettingsData holds the live values of the player-facing settings.
// Volume is always a multiple of the configured step within [0, 1].
type SettingsData struct {
	Fullscreen bool
	TargetTPS  int
	Volume     float64

	DebugOverlay bool
}

var Settings = donburi.NewComponentType[SettingsData]()
