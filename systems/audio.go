package systems

import (
	"bytes"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mgrift/squarewalk/config"
)

var (
	audioContext  *audio.Context
	audioInitOnce sync.Once

	clickSample []byte
	clickLoaded bool
)

func initAudioContext() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// LoadClickSound decodes the menu click sample from the resources
// directory. A missing or broken file disables click feedback.
func LoadClickSound() {
	initAudioContext()

	path := ResourcePath(cfg.Audio.ClickSound)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: no click sound at %s, click feedback disabled", path)
		return
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: could not decode %s: %v", path, err)
		return
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		log.Printf("Warning: could not read %s: %v", path, err)
		return
	}
	clickSample = decoded
	clickLoaded = true
}

// PlayClick plays the menu click at the current volume setting. Volume
// zero mutes instead of playing at zero gain.
func PlayClick(e *ecs.ECS) {
	if !clickLoaded {
		return
	}
	settings := GetOrCreateSettings(e)
	if settings.Volume <= 0 {
		return
	}
	player := audioContext.NewPlayerFromBytes(clickSample)
	player.SetVolume(settings.Volume)
	player.Play()
}
