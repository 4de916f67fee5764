package components

import "github.com/yohamta/donburi"

// ViewportData tracks the current window dimensions as reported by the
// game's Layout callback, plus the menu-layout rebuild bookkeeping.
type ViewportData struct {
	Width, Height int

	// Dimensions the menu layouts were last built for
	LastWidth, LastHeight int

	// Set to force a rebuild regardless of dimension changes
	ForceRebuild bool

	// Countdown consumed once per frame after a fullscreen toggle; while
	// nonzero the layout is rebuilt every frame so late window-manager
	// resizes are picked up.
	ResizeCountdown int
}

var Viewport = donburi.NewComponentType[ViewportData]()
