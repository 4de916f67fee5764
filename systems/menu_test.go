package systems

import (
	"math"
	"testing"

	"github.com/mgrift/squarewalk/components"
)

func TestNavigateIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		delta int
		count int
		want  int
	}{
		{"down", 0, 1, 4, 1},
		{"up", 2, -1, 4, 1},
		{"wrap down", 3, 1, 4, 0},
		{"wrap up", 0, -1, 4, 3},
		{"wrap up three entries", 0, -1, 3, 2},
		{"single entry stays", 0, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NavigateIndex(tt.index, tt.delta, tt.count); got != tt.want {
				t.Errorf("NavigateIndex(%d, %d, %d) = %d, want %d", tt.index, tt.delta, tt.count, got, tt.want)
			}
		})
	}
}

func TestAdjustVolume(t *testing.T) {
	tests := []struct {
		name      string
		volume    float64
		direction int
		want      float64
	}{
		{"step up", 0.5, 1, 0.55},
		{"step down", 0.5, -1, 0.45},
		{"clamp at one", 1.0, 1, 1.0},
		{"clamp at zero", 0.0, -1, 0.0},
		{"snap drifted value", 0.4999999, 1, 0.55},
		{"sanitize only", 0.12, 0, 0.10},
		{"sanitize above range", 3.5, 0, 1.0},
		{"sanitize below range", -2.0, 0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustVolume(tt.volume, tt.direction)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AdjustVolume(%v, %d) = %v, want %v", tt.volume, tt.direction, got, tt.want)
			}
		})
	}
}

func TestChangeVolumeWritesSave(t *testing.T) {
	path := withSaveFile(t)
	e := newTestECS()
	ApplySaveRecord(e, DefaultSaveRecord())

	// Three consecutive steps up from 0.5, each one persisted
	wantAfterStep := []float64{0.55, 0.60, 0.65}
	for i, want := range wantAfterStep {
		changeVolume(e, +1)
		got, err := ReadSave(path)
		if err != nil {
			t.Fatalf("step %d: no save written after volume change: %v", i, err)
		}
		if math.Abs(float64(got.Volume)-want) > 1e-6 {
			t.Errorf("step %d: saved volume = %v, want %v", i, got.Volume, want)
		}
	}

	settings := GetOrCreateSettings(e)
	if math.Abs(settings.Volume-0.65) > 1e-9 {
		t.Errorf("live volume = %v, want 0.65", settings.Volume)
	}
}

func TestAdjustVolumeRepeatedStepsStayOnGrid(t *testing.T) {
	volume := 0.5
	for i := 0; i < 3; i++ {
		volume = AdjustVolume(volume, 1)
	}
	if math.Abs(volume-0.65) > 1e-9 {
		t.Errorf("after three steps up from 0.5: %v, want 0.65", volume)
	}
	for i := 0; i < 20; i++ {
		volume = AdjustVolume(volume, -1)
	}
	if volume != 0 {
		t.Errorf("after stepping far down: %v, want 0", volume)
	}
}

func TestLayoutMenu(t *testing.T) {
	entries := []components.MenuEntry{
		{Label: "A"}, {Label: "B"}, {Label: "C"},
	}
	LayoutMenu(entries, 1000, 500)

	wantW, wantH := 200.0, 30.0
	spacing := 10.0
	for i, entry := range entries {
		if entry.Bounds.W != wantW || entry.Bounds.H != wantH {
			t.Errorf("entry %d size = %vx%v, want %vx%v", i, entry.Bounds.W, entry.Bounds.H, wantW, wantH)
		}
		if entry.Bounds.X != 400 {
			t.Errorf("entry %d x = %v, want 400", i, entry.Bounds.X)
		}
	}

	// Stack is vertically centered with even spacing
	total := 3*wantH + 2*spacing
	if got := entries[0].Bounds.Y; got != 250-total/2 {
		t.Errorf("first entry y = %v, want %v", got, 250-total/2)
	}
	for i := 1; i < len(entries); i++ {
		gap := entries[i].Bounds.Y - (entries[i-1].Bounds.Y + wantH)
		if math.Abs(gap-spacing) > 1e-9 {
			t.Errorf("gap before entry %d = %v, want %v", i, gap, spacing)
		}
	}
}

func TestVolumeButtonBounds(t *testing.T) {
	entry := components.Rect{X: 100, Y: 50, W: 200, H: 40}
	minus, plus := VolumeButtonBounds(entry)

	if minus.W != minus.H || plus.W != plus.H {
		t.Errorf("buttons should be square: minus %vx%v, plus %vx%v", minus.W, minus.H, plus.W, plus.H)
	}
	if minus.X <= entry.X || minus.X+minus.W >= plus.X {
		t.Errorf("minus button out of place: %+v", minus)
	}
	if plus.X+plus.W >= entry.X+entry.W {
		t.Errorf("plus button overflows entry: %+v", plus)
	}
	// Both vertically centered in the entry
	for _, b := range []components.Rect{minus, plus} {
		center := b.Y + b.H/2
		if math.Abs(center-(entry.Y+entry.H/2)) > 1e-9 {
			t.Errorf("button not vertically centered: %+v", b)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := components.Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner inclusive", 10, 20, true},
		{"right edge exclusive", 110, 40, false},
		{"bottom edge exclusive", 50, 70, false},
		{"outside left", 9, 40, false},
		{"outside above", 50, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
