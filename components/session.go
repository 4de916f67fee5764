package components

import (
	cfg "github.com/mgrift/squarewalk/config"
	"github.com/yohamta/donburi"
)

// SessionData is the top-level application state. State is mutated only
// through the transition table in systems/state.go.
type SessionData struct {
	State      cfg.StateID
	ShouldExit bool

	// Set when a transition happened this frame so later systems do not
	// re-handle the same key press against the new state.
	Transitioned bool

	// Frames spent in StatePlaying, accumulated for session stats
	PlayFrames int
}

var Session = donburi.NewComponentType[SessionData]()
