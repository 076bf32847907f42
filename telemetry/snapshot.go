package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/pthm-cable/cells/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// SnapshotExt is the file extension of snapshot files.
const SnapshotExt = ".json.zst"

// Snapshot is a debug dump of the simulation state. Snapshots are for
// inspection only; a run never resumes from one.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	Tick int32 `json:"tick"`

	Weather WeatherState `json:"weather"`
	Cells   []CellState  `json:"cells"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// WeatherState holds the environment at snapshot time.
type WeatherState struct {
	Hour      int `json:"hour"`
	Temp      int `json:"temp"`
	Direction int `json:"direction"`
	Cycle     int `json:"cycle"`
	HourDelay int `json:"hour_delay"`
	TempDelay int `json:"temp_delay"`
}

// CellState holds one cell in registry order.
type CellState struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Energy  int `json:"energy"`
	DNA     int `json:"dna"`
	Command int `json:"command"`
}

// NewWeatherState copies a weather component.
func NewWeatherState(w components.Weather) WeatherState {
	return WeatherState{
		Hour:      w.Hour,
		Temp:      w.Temp,
		Direction: w.Direction,
		Cycle:     w.Cycle,
		HourDelay: w.HourDelay,
		TempDelay: w.TempDelay,
	}
}

// NewCellStates copies cells in order.
func NewCellStates(cells []components.Cell) []CellState {
	out := make([]CellState, len(cells))
	for i, c := range cells {
		out[i] = CellState{X: c.X, Y: c.Y, Energy: c.Energy, DNA: c.DNA, Command: c.Command}
	}
	return out
}

// SnapshotFilename returns the file name a snapshot is saved under.
func SnapshotFilename(snapshot *Snapshot) string {
	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	return name + SnapshotExt
}

// SaveSnapshot writes a zstd-compressed JSON snapshot to dir.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (path string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path = filepath.Join(dir, SnapshotFilename(snapshot))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", fmt.Errorf("zstd writer: %w", err)
	}

	if err := json.NewEncoder(enc).Encode(snapshot); err != nil {
		enc.Close()
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var snapshot Snapshot
	if err := json.NewDecoder(dec).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	return &snapshot, nil
}
