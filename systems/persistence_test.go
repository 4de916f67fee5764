package systems

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mgrift/squarewalk/config"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// withSaveFile redirects the save path to a temp file for the duration of
// the test and returns it.
func withSaveFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), cfg.Settings.SaveFileName)
	previous := savePathFn
	savePathFn = func() string { return path }
	t.Cleanup(func() { savePathFn = previous })
	return path
}

func TestSaveRecordWireSize(t *testing.T) {
	if size := binary.Size(SaveRecord{}); size != 18 {
		t.Fatalf("wire size = %d, want 18", size)
	}
}

func TestSaveRecordRoundTrip(t *testing.T) {
	record := SaveRecord{
		RelX:       0.25,
		RelY:       0.75,
		Fullscreen: 1,
		TargetTPS:  144,
		InputMode:  1,
		Volume:     0.65,
	}

	var buf bytes.Buffer
	if err := record.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != 18 {
		t.Fatalf("encoded length = %d, want 18", buf.Len())
	}

	decoded, err := DecodeSaveRecord(&buf)
	if err != nil {
		t.Fatalf("DecodeSaveRecord: %v", err)
	}
	if decoded != record {
		t.Errorf("decoded = %+v, want %+v", decoded, record)
	}
}

func TestSaveRecordLittleEndianLayout(t *testing.T) {
	record := SaveRecord{TargetTPS: 120}
	var buf bytes.Buffer
	if err := record.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// TargetTPS sits after RelX, RelY and the fullscreen byte
	raw := buf.Bytes()
	if got := binary.LittleEndian.Uint32(raw[9:13]); got != 120 {
		t.Errorf("TargetTPS bytes decode to %d, want 120", got)
	}
}

func TestDecodeSaveRecordShortInput(t *testing.T) {
	for _, n := range []int{0, 1, 17} {
		if _, err := DecodeSaveRecord(bytes.NewReader(make([]byte, n))); err == nil {
			t.Errorf("DecodeSaveRecord with %d bytes: expected error", n)
		}
	}
}

func TestWriteReadSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_save.dat")
	record := SaveRecord{RelX: 0.1, RelY: 0.9, TargetTPS: 120, Volume: 0.5}

	if err := WriteSave(path, record); err != nil {
		t.Fatalf("WriteSave: %v", err)
	}
	got, err := ReadSave(path)
	if err != nil {
		t.Fatalf("ReadSave: %v", err)
	}
	if got != record {
		t.Errorf("ReadSave = %+v, want %+v", got, record)
	}
}

func TestReadSaveMissingFile(t *testing.T) {
	if _, err := ReadSave(filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultSaveRecord(t *testing.T) {
	record := DefaultSaveRecord()
	if record.RelX != float32(cfg.Settings.DefaultRelX) || record.RelY != float32(cfg.Settings.DefaultRelY) {
		t.Errorf("default position (%v, %v)", record.RelX, record.RelY)
	}
	if record.Fullscreen != 1 {
		t.Errorf("default fullscreen = %d, want 1", record.Fullscreen)
	}
	if record.TargetTPS != int32(cfg.Settings.DefaultTPS) {
		t.Errorf("default TPS = %d, want %d", record.TargetTPS, cfg.Settings.DefaultTPS)
	}
	if record.InputMode != 0 {
		t.Errorf("default input mode = %d, want keyboard/mouse", record.InputMode)
	}
	if record.Volume != float32(cfg.Settings.DefaultVolume) {
		t.Errorf("default volume = %v", record.Volume)
	}
}

func TestRestorePosition(t *testing.T) {
	tests := []struct {
		name          string
		record        SaveRecord
		width, height float64
		wantX, wantY  float64
	}{
		{"simple scale", SaveRecord{RelX: 0.5, RelY: 0.5}, 1000, 500, 500, 250},
		{"origin", SaveRecord{}, 1000, 500, 0, 0},
		{"far corner clamped to square", SaveRecord{RelX: 1, RelY: 1}, 1000, 500, 1000 - 30, 500 - 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RestorePosition(tt.record, tt.width, tt.height)
			if math.Abs(got.X-tt.wantX) > 1e-6 || math.Abs(got.Y-tt.wantY) > 1e-6 {
				t.Errorf("RestorePosition = %+v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFirstLayoutRestoresSavedPosition(t *testing.T) {
	withSaveFile(t)
	e := newTestECS()
	ApplySaveRecord(e, SaveRecord{RelX: 0.25, RelY: 0.5, TargetTPS: 120, Volume: 0.5})

	viewport := GetOrCreateViewport(e)
	viewport.Width, viewport.Height = 1000, 500
	UpdateLayout(e)

	player := GetOrCreatePlayer(e)
	if math.Abs(player.Pos.X-250) > 1e-6 || math.Abs(player.Pos.Y-250) > 1e-6 {
		t.Errorf("player after first layout = %+v, want (250, 250)", player.Pos)
	}
}

func TestMenuSaveBeforePlayKeepsLoadedPosition(t *testing.T) {
	path := withSaveFile(t)
	e := newTestECS()
	ApplySaveRecord(e, DefaultSaveRecord())

	viewport := GetOrCreateViewport(e)
	viewport.Width, viewport.Height = 1280, 720
	UpdateLayout(e)

	// Save from the menu without ever entering the playing state
	SaveGame(e)

	got, err := ReadSave(path)
	if err != nil {
		t.Fatalf("ReadSave: %v", err)
	}
	if math.Abs(float64(got.RelX)-cfg.Settings.DefaultRelX) > 1e-6 ||
		math.Abs(float64(got.RelY)-cfg.Settings.DefaultRelY) > 1e-6 {
		t.Errorf("saved position (%v, %v), want loaded (%v, %v)",
			got.RelX, got.RelY, cfg.Settings.DefaultRelX, cfg.Settings.DefaultRelY)
	}
}

func TestRestorePositionRelativeSurvivesResize(t *testing.T) {
	record := SaveRecord{RelX: 0.3, RelY: 0.4}
	small := RestorePosition(record, 800, 600)
	large := RestorePosition(record, 1920, 1080)
	if math.Abs(small.X/800-large.X/1920) > 1e-6 {
		t.Errorf("relative X drifted: %v vs %v", small.X/800, large.X/1920)
	}
	if math.Abs(small.Y/600-large.Y/1080) > 1e-6 {
		t.Errorf("relative Y drifted: %v vs %v", small.Y/600, large.Y/1080)
	}
}
