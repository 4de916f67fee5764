package systems

import (
	"testing"

	cfg "github.com/mgrift/squarewalk/config"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		state   cfg.StateID
		event   Event
		want    cfg.StateID
		effects []Effect
	}{
		{"menu start game", cfg.StateMenu, EventStartGame, cfg.StatePlaying, []Effect{EffectRestorePlayer}},
		{"menu open settings", cfg.StateMenu, EventOpenSettings, cfg.StateSettings, nil},
		{"menu save", cfg.StateMenu, EventSaveGame, cfg.StateMenu, []Effect{EffectSave}},
		{"menu exit saves then quits", cfg.StateMenu, EventExit, cfg.StateMenu, []Effect{EffectSave, EffectQuit}},
		{"settings toggle fullscreen", cfg.StateSettings, EventToggleFullscreen, cfg.StateSettings, []Effect{EffectToggleFullscreen}},
		{"settings back saves", cfg.StateSettings, EventBack, cfg.StateMenu, []Effect{EffectSave}},
		{"playing pause", cfg.StatePlaying, EventPauseToggle, cfg.StatePaused, nil},
		{"paused resume", cfg.StatePaused, EventResume, cfg.StatePlaying, nil},
		{"paused pause key resumes", cfg.StatePaused, EventPauseToggle, cfg.StatePlaying, nil},
		{"paused save stays paused", cfg.StatePaused, EventSaveGame, cfg.StatePaused, []Effect{EffectSave}},
		{"paused main menu saves", cfg.StatePaused, EventMainMenu, cfg.StateMenu, []Effect{EffectSave}},
		// Events that do not apply leave the state alone
		{"menu ignores resume", cfg.StateMenu, EventResume, cfg.StateMenu, nil},
		{"playing ignores select events", cfg.StatePlaying, EventStartGame, cfg.StatePlaying, nil},
		{"settings ignores pause", cfg.StateSettings, EventPauseToggle, cfg.StateSettings, nil},
		{"paused ignores settings", cfg.StatePaused, EventOpenSettings, cfg.StatePaused, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Transition(tt.state, tt.event)
			if got != tt.want {
				t.Errorf("Transition(%v, %v) state = %v, want %v", tt.state, tt.event, got, tt.want)
			}
			if len(effects) != len(tt.effects) {
				t.Fatalf("Transition(%v, %v) effects = %v, want %v", tt.state, tt.event, effects, tt.effects)
			}
			for i := range effects {
				if effects[i] != tt.effects[i] {
					t.Errorf("effect[%d] = %v, want %v", i, effects[i], tt.effects[i])
				}
			}
		})
	}
}

func TestTransitionPauseRoundTrip(t *testing.T) {
	state := cfg.StatePlaying
	state, _ = Transition(state, EventPauseToggle)
	if state != cfg.StatePaused {
		t.Fatalf("after first toggle: %v", state)
	}
	state, _ = Transition(state, EventPauseToggle)
	if state != cfg.StatePlaying {
		t.Fatalf("after second toggle: %v", state)
	}
}
