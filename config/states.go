package config

// StateID represents the top-level application state
type StateID int

const (
	StateMenu StateID = iota
	StatePlaying
	StateSettings
	StatePaused
)

func (s StateID) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateSettings:
		return "Settings"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
