package sim

// TickFunc advances one system by a fixed delta. Systems run in a strict,
// non-reentrant order and are never suspended mid-tick.
type TickFunc func(w *World, dt float64)

// Loop decouples simulation cadence from display refresh rate with a
// fixed-timestep accumulator. The fractional remainder becomes the
// interpolation alpha for presentation and never affects simulation
// outcomes.
type Loop struct {
	world    *World
	dt       float64
	maxFrame float64
	systems  []TickFunc

	accumulator float64
	paused      bool
}

// NewLoop creates a loop running systems in the given order at a fixed
// tick rate. maxFrame clamps a single frame's wall-clock contribution so a
// stall cannot trigger a spiral of death.
func NewLoop(w *World, tickRate int, maxFrame float64, systems ...TickFunc) *Loop {
	return &Loop{
		world:    w,
		dt:       1.0 / float64(tickRate),
		maxFrame: maxFrame,
		systems:  systems,
	}
}

// Advance accumulates frameTime and executes zero or more fixed ticks.
// Returns the number of ticks executed. While paused, the accumulator and
// snapshot are left untouched.
func (l *Loop) Advance(frameTime float64) int {
	if l.paused {
		return 0
	}
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > l.maxFrame {
		frameTime = l.maxFrame
	}
	l.accumulator += frameTime

	ticks := 0
	for l.accumulator >= l.dt {
		l.step()
		l.accumulator -= l.dt
		ticks++
	}
	return ticks
}

// Step executes exactly one fixed tick regardless of the accumulator.
// Replay playback and tests drive the simulation with this.
func (l *Loop) Step() {
	l.step()
}

func (l *Loop) step() {
	w := l.world
	w.Delta = l.dt
	for _, system := range l.systems {
		system(w, l.dt)
	}
	w.Elapsed += l.dt
	w.Tick++
	w.FlushEvents()
}

// Alpha returns the interpolation fraction in [0, 1) between the last two
// simulated states.
func (l *Loop) Alpha() float64 {
	return l.accumulator / l.dt
}

// DT returns the fixed tick duration in seconds.
func (l *Loop) DT() float64 {
	return l.dt
}

// SetPaused toggles the coarse global pause flag. Pausing short-circuits
// the whole per-frame advance before any system runs.
func (l *Loop) SetPaused(paused bool) {
	l.paused = paused
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused
}
