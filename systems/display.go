package systems

import (
	"log"
	"os"
	"runtime"
)

// DetectDisplayServer logs which display server the process is running
// under. Purely informational; it helps diagnose fullscreen-toggle
// oddities reported from Wayland sessions.
func DetectDisplayServer() {
	if runtime.GOOS != "linux" {
		log.Printf("Display: %s", runtime.GOOS)
		return
	}

	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv("DISPLAY")

	switch {
	case sessionType == "wayland" || waylandDisplay != "":
		log.Printf("Display: Wayland session (XDG_SESSION_TYPE=%q, WAYLAND_DISPLAY=%q)",
			sessionType, waylandDisplay)
	case x11Display != "":
		log.Printf("Display: X11 session (DISPLAY=%q)", x11Display)
	default:
		log.Printf("Display: no display server detected")
	}
}
