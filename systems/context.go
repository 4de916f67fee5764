package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
)

// Singleton accessors. Each component lives on a dedicated entity that is
// created lazily on first access, so systems never have to care about
// world setup order.

func getOrCreateSingleton[T any](e *ecs.ECS, comp *donburi.ComponentType[T]) *T {
	if entry, ok := comp.First(e.World); ok {
		return comp.Get(entry)
	}
	entity := e.World.Entry(e.World.Create(comp))
	return comp.Get(entity)
}

// GetOrCreateInput returns the shared input state.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	return getOrCreateSingleton(e, components.Input)
}

// GetOrCreateSession returns the shared application session state.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	return getOrCreateSingleton(e, components.Session)
}

// GetOrCreateSettings returns the live settings values.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	s, ok := components.Settings.First(e.World)
	if !ok {
		entity := e.World.Entry(e.World.Create(components.Settings))
		data := components.Settings.Get(entity)
		data.Fullscreen = cfg.Settings.DefaultFullscreen
		data.TargetTPS = cfg.Settings.DefaultTPS
		data.Volume = cfg.Settings.DefaultVolume
		return data
	}
	return components.Settings.Get(s)
}

// GetOrCreateViewport returns the current window dimensions record.
func GetOrCreateViewport(e *ecs.ECS) *components.ViewportData {
	return getOrCreateSingleton(e, components.Viewport)
}

// GetOrCreatePlayer returns the player square state.
func GetOrCreatePlayer(e *ecs.ECS) *components.PlayerData {
	return getOrCreateSingleton(e, components.Player)
}

// GetOrCreateSavePopup returns the save confirmation popup state.
func GetOrCreateSavePopup(e *ecs.ECS) *components.SavePopupData {
	return getOrCreateSingleton(e, components.SavePopup)
}
