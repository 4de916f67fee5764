package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
)

// UpdateMenus drives whichever menu screen the current state shows and
// translates the shortcut keys that bypass the on-screen entries.
func UpdateMenus(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.Transitioned = false
	input := GetOrCreateInput(e)

	switch session.State {
	case cfg.StateMenu:
		updateMenuScreen(e, getMainMenu(e))

	case cfg.StateSettings:
		if GetAction(input, cfg.ActionBack).JustPressed ||
			GetAction(input, cfg.ActionBackToMenu).JustPressed {
			Dispatch(e, EventBack)
			return
		}
		updateMenuScreen(e, getSettingsMenu(e))

	case cfg.StatePaused:
		if GetAction(input, cfg.ActionPause).JustPressed ||
			GetAction(input, cfg.ActionBack).JustPressed {
			Dispatch(e, EventResume)
			return
		}
		if GetAction(input, cfg.ActionBackToMenu).JustPressed {
			Dispatch(e, EventMainMenu)
			return
		}
		updateMenuScreen(e, getPauseMenu(e))
	}
}

// updateMenuScreen runs one frame of interaction against a menu: hover
// and clicks in keyboard/mouse mode, wraparound selection when keyboard
// or controller navigation owns the screen, and volume stepping while
// the volume entry is selected.
func updateMenuScreen(e *ecs.ECS, menu *components.MenuData) {
	input := GetOrCreateInput(e)
	session := GetOrCreateSession(e)
	count := len(menu.Entries)
	if count == 0 {
		return
	}

	for i := range menu.Entries {
		menu.Entries[i].Hovered = false
		menu.Entries[i].Selected = false
	}

	navUp := GetAction(input, cfg.ActionMenuUp).JustPressed || input.StickUpEdge
	navDown := GetAction(input, cfg.ActionMenuDown).JustPressed || input.StickDownEdge
	selectPressed := GetAction(input, cfg.ActionMenuSelect).JustPressed

	if input.Mode == components.InputController {
		input.NavFlagged = true
	} else if navUp || navDown || selectPressed {
		input.NavFlagged = true
	}

	mouseEnabled := input.Mode == components.InputKeyboardMouse && !input.NavFlagged
	if mouseEnabled {
		mouseX := float64(input.CursorX)
		mouseY := float64(input.CursorY)
		clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

		for i := range menu.Entries {
			entry := &menu.Entries[i]
			entry.Hovered = entry.Bounds.Contains(mouseX, mouseY)

			if clicked && entry.Action == components.MenuActionVolume {
				minus, plus := VolumeButtonBounds(entry.Bounds)
				if minus.Contains(mouseX, mouseY) {
					changeVolume(e, -1)
				}
				if plus.Contains(mouseX, mouseY) {
					changeVolume(e, +1)
				}
			}
			if entry.Hovered && clicked {
				activate(e, entry.Action)
				return
			}
		}
	}

	if input.NavFlagged {
		if navUp {
			menu.SelectedIndex = NavigateIndex(menu.SelectedIndex, -1, count)
		}
		if navDown {
			menu.SelectedIndex = NavigateIndex(menu.SelectedIndex, +1, count)
		}
		if entry := menu.Entry(menu.SelectedIndex); entry != nil {
			entry.Selected = true
		}
		if selectPressed {
			if entry := menu.Entry(menu.SelectedIndex); entry != nil {
				activate(e, entry.Action)
				return
			}
		}
	}

	if session.State == cfg.StateSettings {
		entry := menu.Entry(menu.SelectedIndex)
		if entry != nil && entry.Action == components.MenuActionVolume {
			left := GetAction(input, cfg.ActionMenuLeft).JustPressed || input.StickLeftEdge
			right := GetAction(input, cfg.ActionMenuRight).JustPressed || input.StickRightEdge
			if left {
				changeVolume(e, -1)
			}
			if right {
				changeVolume(e, +1)
			}
		}
	}
}

// NavigateIndex moves a selection by delta with wraparound in [0, count).
func NavigateIndex(index, delta, count int) int {
	return ((index+delta)%count + count) % count
}

// AdjustVolume steps the volume by direction * VolumeStep, clamps to
// [0, 1] and snaps the result onto the step grid. A zero direction just
// sanitizes the value, which is how loaded saves are normalized.
func AdjustVolume(volume float64, direction int) float64 {
	step := cfg.Settings.VolumeStep
	volume += float64(direction) * step
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return math.Round(volume/step) * step
}

// VolumeButtonBounds returns the minus and plus hit targets inside a
// volume entry's bounds.
func VolumeButtonBounds(bounds components.Rect) (minus, plus components.Rect) {
	size := bounds.H * cfg.UI.VolumeButtonScale
	inset := cfg.UI.VolumeButtonInset
	y := bounds.Y + bounds.H/2 - size/2
	minus = components.Rect{X: bounds.X + inset, Y: y, W: size, H: size}
	plus = components.Rect{X: bounds.X + bounds.W - size - inset, Y: y, W: size, H: size}
	return minus, plus
}

func changeVolume(e *ecs.ECS, direction int) {
	settings := GetOrCreateSettings(e)
	settings.Volume = AdjustVolume(settings.Volume, direction)
	PlayClick(e)
	SaveGame(e)
}

func activate(e *ecs.ECS, action components.MenuAction) {
	if event := eventForAction(action); event != EventNone {
		Dispatch(e, event)
	}
}

func eventForAction(action components.MenuAction) Event {
	switch action {
	case components.MenuActionStartGame:
		return EventStartGame
	case components.MenuActionOpenSettings:
		return EventOpenSettings
	case components.MenuActionSaveGame:
		return EventSaveGame
	case components.MenuActionExit:
		return EventExit
	case components.MenuActionToggleFullscreen:
		return EventToggleFullscreen
	case components.MenuActionBackToMenu:
		return EventBack
	case components.MenuActionResume:
		return EventResume
	case components.MenuActionMainMenu:
		return EventMainMenu
	}
	return EventNone
}

// Menu construction and layout

func getMainMenu(e *ecs.ECS) *components.MenuData {
	menu := getOrCreateSingleton(e, components.MainMenu)
	if len(menu.Entries) == 0 {
		menu.Entries = []components.MenuEntry{
			{Label: "Start Game", Action: components.MenuActionStartGame},
			{Label: "Settings", Action: components.MenuActionOpenSettings},
			{Label: "Save Game", Action: components.MenuActionSaveGame},
			{Label: "Exit", Action: components.MenuActionExit},
		}
		layoutPending(e)
	}
	return menu
}

func getSettingsMenu(e *ecs.ECS) *components.MenuData {
	menu := getOrCreateSingleton(e, components.SettingsMenu)
	if len(menu.Entries) == 0 {
		menu.Entries = []components.MenuEntry{
			{Label: "Volume", Action: components.MenuActionVolume},
			{Label: "Toggle Fullscreen", Action: components.MenuActionToggleFullscreen},
			{Label: "Back to Menu", Action: components.MenuActionBackToMenu},
		}
		layoutPending(e)
	}
	return menu
}

func getPauseMenu(e *ecs.ECS) *components.MenuData {
	menu := getOrCreateSingleton(e, components.PauseMenu)
	if len(menu.Entries) == 0 {
		menu.Entries = []components.MenuEntry{
			{Label: "Resume", Action: components.MenuActionResume},
			{Label: "Save Game", Action: components.MenuActionSaveGame},
			{Label: "Main Menu", Action: components.MenuActionMainMenu},
		}
		layoutPending(e)
	}
	return menu
}

func layoutPending(e *ecs.ECS) {
	GetOrCreateViewport(e).ForceRebuild = true
}

// UpdateLayout rebuilds menu bounds whenever the window dimensions change
// and rescales the player position proportionally so the stored relative
// position survives resizes. The resize countdown keeps this running for
// a few frames after a fullscreen toggle.
func UpdateLayout(e *ecs.ECS) {
	viewport := GetOrCreateViewport(e)
	if viewport.ResizeCountdown > 0 {
		viewport.ResizeCountdown--
		viewport.ForceRebuild = true
	}
	if viewport.Width == 0 || viewport.Height == 0 {
		return
	}

	changed := viewport.Width != viewport.LastWidth || viewport.Height != viewport.LastHeight
	if !changed && !viewport.ForceRebuild {
		return
	}

	if changed {
		if viewport.LastWidth > 0 && viewport.LastHeight > 0 {
			rescalePlayer(e,
				float64(viewport.LastWidth), float64(viewport.LastHeight),
				float64(viewport.Width), float64(viewport.Height))
		} else {
			// First real dimensions: place the player at the loaded
			// relative position so an immediate save keeps it.
			RestorePlayerPosition(e)
		}
	}

	width := float64(viewport.Width)
	height := float64(viewport.Height)
	LayoutMenu(getMainMenu(e).Entries, width, height)
	LayoutMenu(getSettingsMenu(e).Entries, width, height)
	LayoutMenu(getPauseMenu(e).Entries, width, height)

	viewport.LastWidth = viewport.Width
	viewport.LastHeight = viewport.Height
	viewport.ForceRebuild = false
}

// LayoutMenu assigns bounds to a vertically centered stack of buttons
// sized relative to the window.
func LayoutMenu(entries []components.MenuEntry, width, height float64) {
	buttonWidth := width * cfg.UI.ButtonWidthScale
	buttonHeight := height * cfg.UI.ButtonHeightScale
	spacing := height * cfg.UI.ButtonSpacingScale

	count := float64(len(entries))
	total := count*buttonHeight + (count-1)*spacing
	x := width/2 - buttonWidth/2
	y := height/2 - total/2

	for i := range entries {
		entries[i].Bounds = components.Rect{
			X: x,
			Y: y + float64(i)*(buttonHeight+spacing),
			W: buttonWidth,
			H: buttonHeight,
		}
	}
}

func rescalePlayer(e *ecs.ECS, oldWidth, oldHeight, newWidth, newHeight float64) {
	player := GetOrCreatePlayer(e)
	player.Pos.X = player.Pos.X / oldWidth * newWidth
	player.Pos.Y = player.Pos.Y / oldHeight * newHeight
	player.Pos = ClampToScreen(player.Pos, newWidth, newHeight)
}
