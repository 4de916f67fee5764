package components

import (
	cfg "github.com/mgrift/squarewalk/config"
	"github.com/yohamta/donburi"
)

// InputMode identifies which device family most recently produced input.
// The value is sticky: it only changes when the other family shows activity.
type InputMode int

const (
	InputKeyboardMouse InputMode = iota
	InputController
)

func (m InputMode) String() string {
	if m == InputController {
		return "Controller"
	}
	return "Keyboard/Mouse"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// EdgeTracker converts a held boolean signal into a single just-pressed
// event per press-release cycle.
type EdgeTracker struct {
	held bool
}

// Update feeds the current raw signal and reports a rising edge. It
// returns true exactly once per contiguous true-interval of raw.
func (t *EdgeTracker) Update(raw bool) bool {
	if raw && !t.held {
		t.held = true
		return true
	}
	if !raw {
		t.held = false
	}
	return false
}

// UpdateAxis applies the tracker to an analog axis value, treating
// value > threshold as the boolean signal. Callers negate the axis for
// the opposite direction so each direction tracks independently.
func (t *EdgeTracker) UpdateAxis(value, threshold float64) bool {
	return t.Update(value > threshold)
}

// InputData stores per-frame input state for all actions plus the
// arbitration bookkeeping for the input mode.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Mode InputMode

	// True after keyboard or controller menu navigation; suppresses mouse
	// hover until the pointer moves or clicks again.
	NavFlagged bool

	// Cursor tracking for delta detection
	CursorX, CursorY         int
	PrevCursorX, PrevCursorY int
	CursorTracked            bool
	CursorMoved              bool

	// Raw left stick values; deadzone is applied by the consumers
	AxisX, AxisY         float64
	PrevAxisX, PrevAxisY float64

	// One-shot stick navigation edges, recomputed each frame
	StickUp, StickDown, StickLeft, StickRight EdgeTracker
	StickUpEdge, StickDownEdge                bool
	StickLeftEdge, StickRightEdge             bool

	GamepadConnected bool
}

var Input = donburi.NewComponentType[InputData]()
