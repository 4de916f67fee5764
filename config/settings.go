package config

// SettingsConfig contains defaults and persistence parameters for the
// player-facing settings.
type SettingsConfig struct {
	// Volume moves in fixed steps and is always snapped to a multiple
	// of VolumeStep inside [0, 1].
	VolumeStep float64

	// Defaults used when no save file exists or it cannot be read.
	DefaultRelX       float64
	DefaultRelY       float64
	DefaultFullscreen bool
	DefaultTPS        int
	DefaultVolume     float64

	// SaveFileName is resolved relative to the executable directory,
	// falling back to the working directory.
	SaveFileName string

	// AppName identifies the gdata storage used for session stats.
	AppName string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeStep:        0.05,
		DefaultRelX:       0.1,
		DefaultRelY:       0.1,
		DefaultFullscreen: true,
		DefaultTPS:        120,
		DefaultVolume:     0.5,
		SaveFileName:      "game_save.dat",
		AppName:           "squarewalk",
	}
}
