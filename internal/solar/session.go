package solar

import "sync"

// Session owns the transient drag override for the timeline. The override
// exists only between Begin and the matching release; releasing reverts the
// timeline to the wall-clock-derived value. Moves are last-write-wins, the
// only ordering guarantee pointer events need. A gesture that never moves
// never overrides: the override takes effect at the first Move, not at Begin.
type Session struct {
	mu       sync.Mutex
	active   bool
	hasValue bool
	progress float64
	gen      uint64
}

// Begin activates the drag override and returns its release func. The
// release is idempotent and must run on every exit path of the gesture,
// including interruption; callers typically defer it. A release from a
// superseded gesture does not end the one currently active.
func (s *Session) Begin() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.hasValue = false
	s.progress = 0
	s.gen++
	gen := s.gen

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.active && s.gen == gen {
				s.active = false
				s.hasValue = false
				s.progress = 0
			}
		})
	}
}

// Move records a new override value. Ignored when no gesture is active.
func (s *Session) Move(progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.hasValue = true
		s.progress = progress
	}
}

// Active reports whether a gesture currently holds the override.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Snapshot returns the override flag and value as one consistent pair. The
// flag is only set once a Move has supplied a value; a moveless gesture keeps
// the wall-clock-derived progress.
func (s *Session) Snapshot() (active bool, progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.hasValue, s.progress
}
