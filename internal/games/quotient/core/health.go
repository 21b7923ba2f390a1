package core

// Health is the run's single ledger: it pays for towers and upgrades and
// absorbs escape damage.
type Health struct {
	current int
	max     int
}

// NewHealth creates a ledger with current and maximum set to start.
func NewHealth(start int) *Health {
	return &Health{current: start, max: start}
}

// Current returns the remaining health.
func (h *Health) Current() int {
	return h.current
}

// Max returns the health the run started with.
func (h *Health) Max() int {
	return h.max
}

// Spend pays for an action. It refuses without mutating once health is
// gone; a successful spend may itself drop health to zero and end the run.
func (h *Health) Spend(n int) bool {
	if h.current <= 0 {
		return false
	}
	h.current -= n
	return true
}

// Damage applies unconditional damage.
func (h *Health) Damage(n int) {
	h.current -= n
}

// Dead returns true once health is zero or below.
func (h *Health) Dead() bool {
	return h.current <= 0
}

// Stars maps the remaining-health ratio to the 0-3 star rating.
func (h *Health) Stars() int {
	if h.max <= 0 || h.current <= 0 {
		return 0
	}
	ratio := float64(h.current) / float64(h.max)
	switch {
	case ratio > 0.66:
		return 3
	case ratio > 0.33:
		return 2
	default:
		return 1
	}
}
