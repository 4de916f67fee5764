package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int

	// ResourcesDir is resolved relative to the executable at runtime.
	// Missing files disable the corresponding feature silently.
	ResourcesDir string
	ClickSound   string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:   44100,
		ResourcesDir: "resources",
		ClickSound:   "click.wav",
	}
}
