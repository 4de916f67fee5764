package config

import "image/color"

// WindowConfig contains window and timing configuration values
type WindowConfig struct {
	Title          string
	WindowedWidth  int
	WindowedHeight int

	// Fullscreen toggle workaround: number of frames to keep forcing a
	// menu-layout rebuild after the mode switch, consumed one per tick.
	ResizeSettleFrames int
}

// PlayerConfig contains player square configuration values
type PlayerConfig struct {
	// Side length of the square as a fraction of window width
	SizeScale float64

	// Base speed factor: displacement per second is
	// SpeedScale * min(windowWidth, windowHeight)
	SpeedScale float64

	// Diagonal input is scaled by this on both axes (1/sqrt 2)
	DiagonalScale float64
}

// UIConfig contains menu and HUD layout values, all relative to window size
type UIConfig struct {
	ButtonWidthScale   float64 // fraction of window width
	ButtonHeightScale  float64 // fraction of window height
	ButtonSpacingScale float64
	TitleScale         float64 // title font size as fraction of window height
	ButtonTextScale    float64 // button font size as fraction of button height
	HintScale          float64 // hint font size as fraction of window height
	PopupScale         float64 // save popup font size as fraction of window height

	// Volume entry minus/plus hit targets
	VolumeButtonScale float64 // button side as fraction of entry height
	VolumeButtonInset float64 // pixels from the entry edge

	PopupDuration float64 // seconds the save popup stays visible

	// FontFile is looked up in the resources directory; when absent the
	// built-in bitmap font is used instead.
	FontFile string
}

// ColorsConfig holds the shared palette
type ColorsConfig struct {
	Background   color.RGBA
	Button       color.RGBA
	ButtonActive color.RGBA
	ButtonBorder color.RGBA
	VolumeButton color.RGBA
	Text         color.RGBA
	Title        color.RGBA
	Hint         color.RGBA
	Player       color.RGBA
	PlayerBorder color.RGBA
	PauseOverlay color.RGBA
	SavedPopup   color.RGBA
	DebugPanel   color.RGBA
}

var Window WindowConfig
var Player PlayerConfig
var UI UIConfig
var Colors ColorsConfig

func init() {
	Window = WindowConfig{
		Title:              "Squarewalk",
		WindowedWidth:      1280,
		WindowedHeight:     720,
		ResizeSettleFrames: 10,
	}

	Player = PlayerConfig{
		SizeScale:     0.03,
		SpeedScale:    0.5,
		DiagonalScale: 0.7071067811865476,
	}

	UI = UIConfig{
		ButtonWidthScale:   0.2,
		ButtonHeightScale:  0.06,
		ButtonSpacingScale: 0.02,
		TitleScale:         0.05,
		ButtonTextScale:    0.5,
		HintScale:          0.02,
		PopupScale:         0.025,
		VolumeButtonScale:  0.7,
		VolumeButtonInset:  8,
		PopupDuration:      2.0,
		FontFile:           "font.ttf",
	}

	Colors = ColorsConfig{
		Background:   color.RGBA{R: 30, G: 30, B: 46, A: 255},
		Button:       color.RGBA{R: 80, G: 80, B: 80, A: 255},
		ButtonActive: color.RGBA{R: 0, G: 121, B: 241, A: 255},
		ButtonBorder: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		VolumeButton: color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Text:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Title:        color.RGBA{R: 200, G: 200, B: 210, A: 255},
		Hint:         color.RGBA{R: 150, G: 150, B: 150, A: 255},
		Player:       color.RGBA{R: 0, G: 121, B: 241, A: 255},
		PlayerBorder: color.RGBA{R: 0, G: 82, B: 172, A: 255},
		PauseOverlay: color.RGBA{R: 0, G: 0, B: 0, A: 128},
		SavedPopup:   color.RGBA{R: 0, G: 228, B: 48, A: 255},
		DebugPanel:   color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}
}
