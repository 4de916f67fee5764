package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
)

// Scratch buffers reused across frames to avoid per-frame allocations
var (
	gamepadIDs      []ebiten.GamepadID
	justPressedKeys []ebiten.Key
)

// UpdateInput polls the keyboard, mouse and first standard-layout gamepad,
// fills the per-action pressed buffers and arbitrates the sticky input
// mode. It runs before every other system so they all see a consistent
// snapshot of the frame's input.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	gamepadID, connected := firstStandardGamepad(gamepadIDs)
	input.GamepadConnected = connected

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		if !connected {
			continue
		}
		for _, button := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gamepadID, button) {
				input.Current[actionID] = true
			}
		}
	}

	// Left stick: raw values for movement, edge trackers for menu steps
	input.PrevAxisX, input.PrevAxisY = input.AxisX, input.AxisY
	input.AxisX, input.AxisY = 0, 0
	if connected {
		input.AxisX = ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		input.AxisY = ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)
	}
	threshold := cfg.Input.MenuStickThreshold
	input.StickUpEdge = input.StickUp.UpdateAxis(-input.AxisY, threshold)
	input.StickDownEdge = input.StickDown.UpdateAxis(input.AxisY, threshold)
	input.StickLeftEdge = input.StickLeft.UpdateAxis(-input.AxisX, threshold)
	input.StickRightEdge = input.StickRight.UpdateAxis(input.AxisX, threshold)

	// Device activity for mode arbitration
	justPressedKeys = inpututil.AppendJustPressedKeys(justPressedKeys[:0])
	keyboardUsed := len(justPressedKeys) > 0

	cursorX, cursorY := ebiten.CursorPosition()
	input.PrevCursorX, input.PrevCursorY = input.CursorX, input.CursorY
	input.CursorX, input.CursorY = cursorX, cursorY
	input.CursorMoved = input.CursorTracked &&
		(cursorX != input.PrevCursorX || cursorY != input.PrevCursorY)
	input.CursorTracked = true
	mouseUsed := input.CursorMoved ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	gamepadUsed := false
	if connected {
		deadzone := cfg.Input.AnalogDeadzone
		gamepadUsed = (math.Abs(input.AxisX) > deadzone && input.AxisX != input.PrevAxisX) ||
			(math.Abs(input.AxisY) > deadzone && input.AxisY != input.PrevAxisY) ||
			anyStandardButtonJustPressed(gamepadID)
	}

	arbitrateMode(input, keyboardUsed, mouseUsed, gamepadUsed)
	updateDebugToggle(e, input)
}

// arbitrateMode applies the sticky device arbitration. Controller activity
// wins over keyboard/mouse activity within the same frame; with no
// activity the mode is unchanged.
func arbitrateMode(input *components.InputData, keyboardUsed, mouseUsed, gamepadUsed bool) {
	previous := input.Mode
	if gamepadUsed {
		input.Mode = components.InputController
	} else if keyboardUsed || mouseUsed {
		input.Mode = components.InputKeyboardMouse
	}

	if input.Mode != previous {
		if input.Mode == components.InputController {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			input.NavFlagged = false
		}
		return
	}

	// Within keyboard/mouse mode the cursor follows the navigation flag:
	// pointer motion reclaims it, keyboard navigation hides it.
	if input.Mode == components.InputKeyboardMouse {
		if input.CursorMoved {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			input.NavFlagged = false
		} else if input.NavFlagged {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
}

func anyStandardButtonJustPressed(id ebiten.GamepadID) bool {
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			return true
		}
	}
	return false
}

// firstStandardGamepad returns the first connected gamepad with a standard
// button layout, if any.
func firstStandardGamepad(ids []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	for _, id := range ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// GetAction derives the temporal state of an action from the current and
// previous frame buffers.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	current := input.Current[action]
	previous := input.Previous[action]
	return components.ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

func updateDebugToggle(e *ecs.ECS, input *components.InputData) {
	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.DebugOverlay = !settings.DebugOverlay
	}
}
