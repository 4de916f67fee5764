package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
	"github.com/mgrift/squarewalk/fonts"
)

const screenMargin = 10

// DrawGame renders the player square and the in-game hints.
func DrawGame(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State != cfg.StatePlaying {
		return
	}

	player := GetOrCreatePlayer(e)
	input := GetOrCreateInput(e)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	size := PlayerSize(float64(width))
	vector.FillRect(screen,
		float32(player.Pos.X), float32(player.Pos.Y),
		float32(size), float32(size),
		cfg.Colors.Player, false)
	vector.StrokeRect(screen,
		float32(player.Pos.X), float32(player.Pos.Y),
		float32(size), float32(size),
		2, cfg.Colors.PlayerBorder, false)

	moveHint := "WASD/Arrow Keys: Move"
	pauseHint := "ESC: Pause"
	if input.Mode == components.InputController {
		moveHint = "Left Stick: Move"
		pauseHint = "Start Button: Pause"
	}
	margin := int(float64(width) * 0.01)
	lineSpacing := int(float64(height) * 0.03)
	titleFace := fonts.ForSize(int(float64(height) * 0.04))
	hintFace := fonts.ForSize(int(float64(height) * cfg.UI.PopupScale))
	infoFace := fonts.ForSize(int(float64(height) * cfg.UI.HintScale))

	drawTextAt(screen, "Game Running", titleFace, margin, margin, cfg.Colors.Title)
	drawTextAt(screen, moveHint, hintFace, margin, margin+lineSpacing, cfg.Colors.Hint)
	drawTextAt(screen, pauseHint, hintFace, margin, margin+lineSpacing*2, cfg.Colors.Hint)
	position := fmt.Sprintf("Player: (%d, %d)", int(player.Pos.X), int(player.Pos.Y))
	drawTextAt(screen, position, infoFace, margin, margin+lineSpacing*3, cfg.Colors.Hint)

	modeLabel := "Input: " + input.Mode.String()
	modeBounds := text.BoundString(infoFace, modeLabel)
	drawTextAt(screen, modeLabel, infoFace, width-margin-modeBounds.Dx(), margin, cfg.Colors.Hint)
}

// DrawMenus renders whichever menu screen the current state shows.
func DrawMenus(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	switch session.State {
	case cfg.StateMenu:
		drawMenuScreen(e, screen, getMainMenu(e), cfg.Window.Title)

	case cfg.StateSettings:
		drawMenuScreen(e, screen, getSettingsMenu(e), "Settings")

	case cfg.StatePaused:
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Colors.PauseOverlay, false)
		drawMenuScreen(e, screen, getPauseMenu(e), "Paused")
	}
}

func drawMenuScreen(e *ecs.ECS, screen *ebiten.Image, menu *components.MenuData, title string) {
	settings := GetOrCreateSettings(e)
	input := GetOrCreateInput(e)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	titleFace := fonts.ForSize(int(float64(height) * cfg.UI.TitleScale))
	titleBounds := text.BoundString(titleFace, title)
	drawTextAt(screen, title, titleFace, width/2-titleBounds.Dx()/2, int(float64(height)*0.1), cfg.Colors.Title)

	for i := range menu.Entries {
		entry := &menu.Entries[i]
		bounds := entry.Bounds

		fill := cfg.Colors.Button
		if entry.Hovered || entry.Selected {
			fill = cfg.Colors.ButtonActive
		}
		vector.FillRect(screen,
			float32(bounds.X), float32(bounds.Y),
			float32(bounds.W), float32(bounds.H),
			fill, false)
		vector.StrokeRect(screen,
			float32(bounds.X), float32(bounds.Y),
			float32(bounds.W), float32(bounds.H),
			2, cfg.Colors.ButtonBorder, false)

		label := entry.Label
		if entry.Action == components.MenuActionVolume {
			label = fmt.Sprintf("Volume: %d%%", int(math.Round(settings.Volume*100)))
			drawVolumeButtons(screen, bounds)
		}
		labelFace := fonts.ForSize(int(bounds.H * cfg.UI.ButtonTextScale))
		drawTextCentered(screen, label, labelFace,
			int(bounds.X+bounds.W/2), int(bounds.Y+bounds.H/2), cfg.Colors.Text)
	}

	hint := "Use mouse to navigate"
	if input.Mode == components.InputController {
		hint = "Use controller D-pad to navigate, A to select"
	}
	hintFace := fonts.ForSize(int(float64(height) * cfg.UI.HintScale))
	hintBounds := text.BoundString(hintFace, hint)
	drawTextAt(screen, hint, hintFace,
		screenMargin, height-screenMargin-hintBounds.Dy(), cfg.Colors.Hint)

	modeLabel := "Input: " + input.Mode.String()
	modeBounds := text.BoundString(hintFace, modeLabel)
	drawTextAt(screen, modeLabel, hintFace,
		width-screenMargin-modeBounds.Dx(), height-screenMargin-modeBounds.Dy(), cfg.Colors.Hint)
}

func drawVolumeButtons(screen *ebiten.Image, bounds components.Rect) {
	minus, plus := VolumeButtonBounds(bounds)
	for _, button := range []components.Rect{minus, plus} {
		vector.FillRect(screen,
			float32(button.X), float32(button.Y),
			float32(button.W), float32(button.H),
			cfg.Colors.VolumeButton, false)
		vector.StrokeRect(screen,
			float32(button.X), float32(button.Y),
			float32(button.W), float32(button.H),
			1, cfg.Colors.ButtonBorder, false)
	}

	// Minus and plus glyphs as plain bars
	barLength := float32(minus.W) * 0.5
	vector.FillRect(screen,
		float32(minus.X+minus.W/2)-barLength/2, float32(minus.Y+minus.H/2)-1,
		barLength, 2, cfg.Colors.Text, false)
	vector.FillRect(screen,
		float32(plus.X+plus.W/2)-barLength/2, float32(plus.Y+plus.H/2)-1,
		barLength, 2, cfg.Colors.Text, false)
	vector.FillRect(screen,
		float32(plus.X+plus.W/2)-1, float32(plus.Y+plus.H/2)-barLength/2,
		2, barLength, cfg.Colors.Text, false)
}

// DrawSavePopup renders the fading save confirmation.
func DrawSavePopup(e *ecs.ECS, screen *ebiten.Image) {
	popup := GetOrCreateSavePopup(e)
	if !popup.Active {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	face := fonts.ForSize(int(float64(height) * cfg.UI.PopupScale))
	label := "Game Saved!"
	bounds := text.BoundString(face, label)
	drawTextAt(screen, label, face,
		width-bounds.Dx()-30, 30, fadeColor(cfg.Colors.SavedPopup, popup.Alpha))
}

// DrawDebugOverlay renders the diagnostics panel toggled with F1.
func DrawDebugOverlay(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.DebugOverlay {
		return
	}
	session := GetOrCreateSession(e)
	viewport := GetOrCreateViewport(e)
	player := GetOrCreatePlayer(e)
	input := GetOrCreateInput(e)

	lines := []string{
		fmt.Sprintf("state: %s", session.State),
		fmt.Sprintf("tps: %.1f (target %d)  fps: %.1f", ebiten.ActualTPS(), settings.TargetTPS, ebiten.ActualFPS()),
		fmt.Sprintf("window: %dx%d  fullscreen: %v  countdown: %d", viewport.Width, viewport.Height, settings.Fullscreen, viewport.ResizeCountdown),
		fmt.Sprintf("player: (%.1f, %.1f)", player.Pos.X, player.Pos.Y),
		fmt.Sprintf("input: %s  gamepad: %v  nav: %v", input.Mode, input.GamepadConnected, input.NavFlagged),
		fmt.Sprintf("axis: (%.2f, %.2f)", input.AxisX, input.AxisY),
		fmt.Sprintf("volume: %.2f", settings.Volume),
	}

	const lineStep = 14
	vector.FillRect(screen,
		screenMargin-4, 36,
		300, float32(len(lines)*lineStep+12),
		cfg.Colors.DebugPanel, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, screenMargin, 40+i*lineStep)
	}
}

// drawTextAt draws a string with (x, y) as its top-left corner.
func drawTextAt(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Min.X, y-bounds.Min.Y, clr)
}

// drawTextCentered draws a string centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	drawTextAt(screen, s, face, cx-bounds.Dx()/2, cy-bounds.Dy()/2, clr)
}

func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
