package components

import "testing"

func TestEdgeTrackerFiresOncePerPress(t *testing.T) {
	var tracker EdgeTracker

	signal := []bool{false, true, true, true, false, false, true, false, true}
	want := []bool{false, true, false, false, false, false, true, false, true}

	for i, raw := range signal {
		if got := tracker.Update(raw); got != want[i] {
			t.Errorf("frame %d: Update(%v) = %v, want %v", i, raw, got, want[i])
		}
	}
}

func TestEdgeTrackerStartsHeld(t *testing.T) {
	var tracker EdgeTracker
	if !tracker.Update(true) {
		t.Error("first true sample should fire")
	}
	if tracker.Update(true) {
		t.Error("held signal should not fire again")
	}
}

func TestEdgeTrackerUpdateAxis(t *testing.T) {
	const threshold = 0.5
	var tracker EdgeTracker

	steps := []struct {
		value float64
		want  bool
	}{
		{0.0, false},
		{0.4, false},  // below threshold
		{0.8, true},   // crosses threshold
		{0.9, false},  // still held
		{0.6, false},  // still held
		{0.3, false},  // released
		{0.7, true},   // crosses again
		{-0.9, false}, // opposite direction never fires this tracker
		{0.51, true},
	}
	for i, step := range steps {
		if got := tracker.UpdateAxis(step.value, threshold); got != step.want {
			t.Errorf("step %d: UpdateAxis(%v) = %v, want %v", i, step.value, got, step.want)
		}
	}
}

func TestEdgeTrackerAxisPairIndependent(t *testing.T) {
	const threshold = 0.5
	var up, down EdgeTracker

	// Push down: only the down tracker fires
	axisY := 0.9
	if up.UpdateAxis(-axisY, threshold) {
		t.Error("up tracker fired on a downward push")
	}
	if !down.UpdateAxis(axisY, threshold) {
		t.Error("down tracker should fire on a downward push")
	}

	// Swing through center to up: up fires once
	axisY = 0.0
	up.UpdateAxis(-axisY, threshold)
	down.UpdateAxis(axisY, threshold)
	axisY = -0.9
	if !up.UpdateAxis(-axisY, threshold) {
		t.Error("up tracker should fire on an upward push")
	}
	if down.UpdateAxis(axisY, threshold) {
		t.Error("down tracker fired on an upward push")
	}
}

func TestInputModeString(t *testing.T) {
	if InputKeyboardMouse.String() != "Keyboard/Mouse" {
		t.Errorf("keyboard mode label: %q", InputKeyboardMouse.String())
	}
	if InputController.String() != "Controller" {
		t.Errorf("controller mode label: %q", InputController.String())
	}
}
