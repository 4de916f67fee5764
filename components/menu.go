package components

import "github.com/yohamta/donburi"

// MenuAction is the enumerated action tag carried by a menu entry.
// Dispatch happens on the tag, never on the label text.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionStartGame
	MenuActionOpenSettings
	MenuActionSaveGame
	MenuActionExit
	MenuActionVolume
	MenuActionToggleFullscreen
	MenuActionBackToMenu
	MenuActionResume
	MenuActionMainMenu
)

// Rect is an axis-aligned screen-space rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (px, py) lies inside the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// MenuEntry is one selectable item. Bounds are recomputed from the
// current window dimensions whenever the layout is rebuilt.
type MenuEntry struct {
	Label    string
	Action   MenuAction
	Bounds   Rect
	Hovered  bool
	Selected bool
}

// MenuData stores the state of one menu screen
type MenuData struct {
	Entries       []MenuEntry
	SelectedIndex int
}

// Entry returns the entry at the shared selected index, or nil when the
// index is out of range.
func (m *MenuData) Entry(i int) *MenuEntry {
	if i < 0 || i >= len(m.Entries) {
		return nil
	}
	return &m.Entries[i]
}

var MainMenu = donburi.NewComponentType[MenuData]()
var SettingsMenu = donburi.NewComponentType[MenuData]()
var PauseMenu = donburi.NewComponentType[MenuData]()
