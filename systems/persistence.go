package systems

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/mgrift/squarewalk/components"
	cfg "github.com/mgrift/squarewalk/config"
)

// SaveRecord is the fixed little-endian save file layout. The position is
// stored as a fraction of the window dimensions so it carries over across
// resolutions. Field order is the wire order; all fields are fixed-size.
type SaveRecord struct {
	RelX       float32
	RelY       float32
	Fullscreen uint8
	TargetTPS  int32
	InputMode  uint8
	Volume     float32
}

// currentRecord mirrors the last record read from or written to disk.
// EffectRestorePlayer converts it back to an absolute position.
var currentRecord SaveRecord

// DefaultSaveRecord returns the record used when no readable save exists.
func DefaultSaveRecord() SaveRecord {
	record := SaveRecord{
		RelX:      float32(cfg.Settings.DefaultRelX),
		RelY:      float32(cfg.Settings.DefaultRelY),
		TargetTPS: int32(cfg.Settings.DefaultTPS),
		Volume:    float32(cfg.Settings.DefaultVolume),
	}
	if cfg.Settings.DefaultFullscreen {
		record.Fullscreen = 1
	}
	return record
}

// Encode writes the record in its wire layout.
func (r *SaveRecord) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, r)
}

// DecodeSaveRecord reads one record from its wire layout. A short or
// missing file surfaces as an error; garbage values decode fine and are
// sanitized when applied.
func DecodeSaveRecord(r io.Reader) (SaveRecord, error) {
	var record SaveRecord
	if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
		return SaveRecord{}, fmt.Errorf("decode save record: %w", err)
	}
	return record, nil
}

// savePathFn is swapped out by tests to write into a temp directory.
var savePathFn = SavePath

// SavePath resolves the save file next to the executable, falling back to
// the working directory when the executable path is unavailable.
func SavePath() string {
	exe, err := os.Executable()
	if err != nil {
		return cfg.Settings.SaveFileName
	}
	return filepath.Join(filepath.Dir(exe), cfg.Settings.SaveFileName)
}

// ResourcePath resolves a bundled resource file the same way.
func ResourcePath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(cfg.Audio.ResourcesDir, name)
	}
	return filepath.Join(filepath.Dir(exe), cfg.Audio.ResourcesDir, name)
}

// WriteSave writes a record to path, replacing any previous save.
func WriteSave(path string, record SaveRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	if err := record.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSave reads a record from path.
func ReadSave(path string) (SaveRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return SaveRecord{}, err
	}
	defer f.Close()
	return DecodeSaveRecord(f)
}

// LoadGame reads the save file, falling back to defaults when it is
// missing or unreadable. Failures are never fatal.
func LoadGame() SaveRecord {
	record, err := ReadSave(savePathFn())
	if err != nil {
		log.Printf("Warning: no usable save file, starting with defaults: %v", err)
		record = DefaultSaveRecord()
	} else {
		log.Printf("Loaded save: position (%.2f, %.2f), fullscreen %v, %d TPS",
			record.RelX, record.RelY, record.Fullscreen != 0, record.TargetTPS)
	}
	currentRecord = record
	return record
}

// ApplySaveRecord pushes a loaded record into the world, sanitizing the
// values a hand-edited or corrupt file could carry.
func ApplySaveRecord(e *ecs.ECS, record SaveRecord) {
	currentRecord = record

	settings := GetOrCreateSettings(e)
	settings.Fullscreen = record.Fullscreen != 0
	settings.TargetTPS = int(record.TargetTPS)
	if settings.TargetTPS <= 0 {
		settings.TargetTPS = cfg.Settings.DefaultTPS
	}
	settings.Volume = AdjustVolume(float64(record.Volume), 0)

	input := GetOrCreateInput(e)
	if components.InputMode(record.InputMode) == components.InputController {
		input.Mode = components.InputController
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// SaveGame snapshots the world into a record, writes it next to the
// executable and triggers the confirmation popup.
func SaveGame(e *ecs.ECS) {
	viewport := GetOrCreateViewport(e)
	player := GetOrCreatePlayer(e)
	settings := GetOrCreateSettings(e)
	input := GetOrCreateInput(e)

	record := currentRecord
	if viewport.Width > 0 && viewport.Height > 0 {
		record.RelX = float32(clampFloat(player.Pos.X/float64(viewport.Width), 0, 1))
		record.RelY = float32(clampFloat(player.Pos.Y/float64(viewport.Height), 0, 1))
	}
	record.Fullscreen = 0
	if settings.Fullscreen {
		record.Fullscreen = 1
	}
	record.TargetTPS = int32(settings.TargetTPS)
	record.InputMode = uint8(input.Mode)
	record.Volume = float32(settings.Volume)

	if err := WriteSave(savePathFn(), record); err != nil {
		log.Printf("Warning: could not write save file: %v", err)
		return
	}
	currentRecord = record
	log.Printf("Saved: position (%.2f, %.2f), volume %.2f", record.RelX, record.RelY, record.Volume)

	ShowSavePopup(e)
	PlayClick(e)
	recordSave()
}

// RestorePlayerPosition places the player at the saved relative position
// scaled to the current window, clamped on screen.
func RestorePlayerPosition(e *ecs.ECS) {
	viewport := GetOrCreateViewport(e)
	if viewport.Width == 0 || viewport.Height == 0 {
		return
	}
	player := GetOrCreatePlayer(e)
	player.Pos = RestorePosition(currentRecord,
		float64(viewport.Width), float64(viewport.Height))
}

// RestorePosition converts a record's relative position to absolute
// window coordinates.
func RestorePosition(record SaveRecord, width, height float64) components.Vector {
	pos := components.Vector{
		X: float64(record.RelX) * width,
		Y: float64(record.RelY) * height,
	}
	return ClampToScreen(pos, width, height)
}

// Session stats, kept in the platform's per-app data directory via gdata.
// This is bookkeeping only and independent of the save file.

const statsItemName = "session_stats.json"

// SessionStats accumulates counters across program runs.
type SessionStats struct {
	Launches    int     `json:"launches"`
	Saves       int     `json:"saves"`
	PlaySeconds float64 `json:"playSeconds"`
}

var (
	statsManager *gdata.Manager
	stats        SessionStats
)

// InitPersistence opens the gdata store for session stats. Failure leaves
// stats disabled without affecting the rest of the game.
func InitPersistence() {
	m, err := gdata.Open(gdata.Config{AppName: cfg.Settings.AppName})
	if err != nil {
		log.Printf("Warning: session stats disabled: %v", err)
		return
	}
	statsManager = m
	if data, err := m.LoadItem(statsItemName); err == nil && data != nil {
		if err := json.Unmarshal(data, &stats); err != nil {
			log.Printf("Warning: could not parse session stats: %v", err)
			stats = SessionStats{}
		}
	}
}

// RecordLaunch counts this program run.
func RecordLaunch() {
	stats.Launches++
	flushStats()
}

func recordSave() {
	stats.Saves++
	flushStats()
}

// RecordPlayTime adds the accumulated playing-state frames, converted at
// the given tick rate, and persists the stats. Called at shutdown.
func RecordPlayTime(playFrames, tps int) {
	if tps > 0 {
		stats.PlaySeconds += float64(playFrames) / float64(tps)
	}
	flushStats()
}

func flushStats() {
	if statsManager == nil {
		return
	}
	data, err := json.Marshal(&stats)
	if err != nil {
		log.Printf("Warning: could not encode session stats: %v", err)
		return
	}
	if err := statsManager.SaveItem(statsItemName, data); err != nil {
		log.Printf("Warning: could not store session stats: %v", err)
	}
}
