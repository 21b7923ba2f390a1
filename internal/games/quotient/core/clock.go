package core

// SchedulerState tracks whether the tick clock is running.
type SchedulerState uint8

const (
	SchedStopped SchedulerState = iota
	SchedRunning
	SchedPaused
)

// String returns the string representation of a scheduler state.
func (s SchedulerState) String() string {
	switch s {
	case SchedStopped:
		return "Stopped"
	case SchedRunning:
		return "Running"
	case SchedPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Scheduler converts wall-clock frame deltas into discrete simulation
// ticks. Each fired tick decrements the accumulator by exactly one tick
// duration (never a reset), so fractional frame deltas cannot drift:
// a 1.0s duration fed 0.3s deltas fires at cumulative 1.0, 2.0, 3.0.
type Scheduler struct {
	tickSeconds float64
	acc         float64
	state       SchedulerState
}

// NewScheduler creates a stopped scheduler with the given tick duration.
func NewScheduler(tickSeconds float64) *Scheduler {
	if tickSeconds <= 0 {
		tickSeconds = 1.0
	}
	return &Scheduler{tickSeconds: tickSeconds}
}

// TickSeconds returns the tick duration.
func (s *Scheduler) TickSeconds() float64 {
	return s.tickSeconds
}

// State returns the current scheduler state.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Running returns true while the clock accepts time.
func (s *Scheduler) Running() bool {
	return s.state == SchedRunning
}

// Paused returns true while the clock is paused.
func (s *Scheduler) Paused() bool {
	return s.state == SchedPaused
}

// Start begins (or restarts) the clock from a clean accumulator.
// Valid from both stopped and paused.
func (s *Scheduler) Start() {
	s.acc = 0
	s.state = SchedRunning
}

// Pause freezes the clock, preserving the accumulated fraction.
func (s *Scheduler) Pause() {
	if s.state == SchedRunning {
		s.state = SchedPaused
	}
}

// Resume continues a paused clock without touching the accumulator.
func (s *Scheduler) Resume() {
	if s.state == SchedPaused {
		s.state = SchedRunning
	}
}

// Stop halts the clock entirely. Only Start revives it.
func (s *Scheduler) Stop() {
	s.state = SchedStopped
}

// Advance feeds a frame delta and returns how many ticks are now due.
// Paused and stopped clocks swallow no time and fire nothing.
func (s *Scheduler) Advance(dt float64) int {
	if s.state != SchedRunning || dt <= 0 {
		return 0
	}
	s.acc += dt
	ticks := 0
	for s.acc >= s.tickSeconds {
		s.acc -= s.tickSeconds
		ticks++
	}
	return ticks
}

// Fraction returns how far into the next tick the clock is, in [0, 1).
// The render layer uses it for motion interpolation.
func (s *Scheduler) Fraction() float64 {
	if s.tickSeconds <= 0 {
		return 0
	}
	return s.acc / s.tickSeconds
}
