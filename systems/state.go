package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mgrift/squarewalk/config"
)

// Event is a high-level state machine input, produced by menu activation
// or by the shortcut keys the menu systems translate.
type Event int

const (
	EventNone Event = iota
	EventStartGame
	EventOpenSettings
	EventSaveGame
	EventExit
	EventToggleFullscreen
	EventBack
	EventPauseToggle
	EventResume
	EventMainMenu
)

// Effect is a side effect requested by a state transition. Transition
// stays pure; effects are executed afterwards by Dispatch.
type Effect int

const (
	EffectSave Effect = iota
	EffectRestorePlayer
	EffectToggleFullscreen
	EffectQuit
)

// Transition is the application state machine. Given the current state
// and an event it returns the next state and the effects to run, without
// touching any world state. Unknown combinations leave the state alone.
func Transition(state cfg.StateID, event Event) (cfg.StateID, []Effect) {
	switch state {
	case cfg.StateMenu:
		switch event {
		case EventStartGame:
			return cfg.StatePlaying, []Effect{EffectRestorePlayer}
		case EventOpenSettings:
			return cfg.StateSettings, nil
		case EventSaveGame:
			return cfg.StateMenu, []Effect{EffectSave}
		case EventExit:
			return cfg.StateMenu, []Effect{EffectSave, EffectQuit}
		}

	case cfg.StateSettings:
		switch event {
		case EventToggleFullscreen:
			return cfg.StateSettings, []Effect{EffectToggleFullscreen}
		case EventBack:
			return cfg.StateMenu, []Effect{EffectSave}
		}

	case cfg.StatePlaying:
		if event == EventPauseToggle {
			return cfg.StatePaused, nil
		}

	case cfg.StatePaused:
		switch event {
		case EventResume, EventPauseToggle:
			return cfg.StatePlaying, nil
		case EventSaveGame:
			return cfg.StatePaused, []Effect{EffectSave}
		case EventMainMenu:
			return cfg.StateMenu, []Effect{EffectSave}
		}
	}
	return state, nil
}

// Dispatch feeds an event through the transition table and executes the
// resulting effects against the world.
func Dispatch(e *ecs.ECS, event Event) {
	session := GetOrCreateSession(e)
	next, effects := Transition(session.State, event)
	if next != session.State {
		session.Transitioned = true
	}
	session.State = next
	for _, effect := range effects {
		applyEffect(e, effect)
	}
}

func applyEffect(e *ecs.ECS, effect Effect) {
	switch effect {
	case EffectSave:
		SaveGame(e)
	case EffectRestorePlayer:
		RestorePlayerPosition(e)
	case EffectToggleFullscreen:
		toggleFullscreen(e)
	case EffectQuit:
		GetOrCreateSession(e).ShouldExit = true
	}
}

// toggleFullscreen flips the display mode and arms the resize countdown so
// layouts keep rebuilding while the window manager settles on the final
// dimensions.
func toggleFullscreen(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	viewport := GetOrCreateViewport(e)

	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	if !settings.Fullscreen {
		ebiten.SetWindowSize(cfg.Window.WindowedWidth, cfg.Window.WindowedHeight)
	}
	viewport.ResizeCountdown = cfg.Window.ResizeSettleFrames
	viewport.ForceRebuild = true
}
