package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/sg/internal/application/replay"
	"github.com/younwookim/sg/internal/application/sim"
)

// Recorder captures the per-tick input stream for deterministic replay
type Recorder struct {
	data      replay.SessionData
	recording bool
	tick      uint64
}

// NewRecorder creates a new recorder with the seed and starting stage the
// session will be replayed against
func NewRecorder(seed int64, stage int) *Recorder {
	return &Recorder{
		data: replay.SessionData{
			Version:   "1.0",
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Ticks:     make([]replay.TickInput, 0, 3600), // ~1 minute at 60 ticks/s
		},
		recording: true,
	}
}

// RecordTick records one simulation tick's input
func (r *Recorder) RecordTick(in sim.Input) {
	if !r.recording {
		return
	}

	r.data.Ticks = append(r.data.Ticks, replay.TickInput{
		T:  r.tick,
		MX: in.MoveX,
		MY: in.MoveY,
		B:  in.Boost,
		F:  in.Fire,
		W:  in.SelectWeapon,
	})
	r.tick++
}

// Save writes the session data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return len(r.data.Ticks)
}

// GetData returns the session data (for testing)
func (r *Recorder) GetData() replay.SessionData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("session_%s.json", time.Now().Format("20060102_150405"))
}
