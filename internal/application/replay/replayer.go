package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/sg/internal/application/sim"
)

// Replayer plays back recorded inputs one tick at a time
type Replayer struct {
	data SessionData
	tick int
}

// NewReplayer creates a new replayer from session data
func NewReplayer(data SessionData) *Replayer {
	return &Replayer{
		data: data,
		tick: 0,
	}
}

// LoadSession loads session data from a file
func LoadSession(filename string) (*SessionData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data SessionData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &data, nil
}

// NextInput returns the input for the current tick and advances
func (r *Replayer) NextInput() (sim.Input, bool) {
	if r.tick >= len(r.data.Ticks) {
		return sim.Input{SelectWeapon: -1}, false
	}

	ti := r.data.Ticks[r.tick]
	r.tick++

	return sim.Input{
		MoveX:        ti.MX,
		MoveY:        ti.MY,
		Boost:        ti.B,
		Fire:         ti.F,
		SelectWeapon: ti.W,
	}, true
}

// CurrentTick returns the current playback position
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of recorded ticks
func (r *Replayer) TotalTicks() int {
	return len(r.data.Ticks)
}

// Seed returns the seed the session was recorded with
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the session started on
func (r *Replayer) Stage() int {
	return r.data.Stage
}

// Reset resets playback to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
}

// CreateTestSessionData creates session data for testing (idle player)
func CreateTestSessionData(ticks int) SessionData {
	data := SessionData{
		Version:   "1.0",
		Seed:      12345,
		Stage:     0,
		StartTime: time.Now().Format(time.RFC3339),
		Ticks:     make([]TickInput, ticks),
	}

	for i := 0; i < ticks; i++ {
		data.Ticks[i] = TickInput{
			T: uint64(i),
			W: -1,
		}
	}

	return data
}
