package testutils

import (
	"sync"
	"time"

	"github.com/aretw0/pillars/internal/runtime"
)

// ManualScheduler implements runtime.Scheduler with timers that only fire on demand.
// It records every requested delay and the peak number of pending timers.
type ManualScheduler struct {
	mu        sync.Mutex
	pending   []*ManualTimer
	delays    []time.Duration
	elapsed   time.Duration
	maxActive int
}

// ManualTimer is a timer created by ManualScheduler.
type ManualTimer struct {
	owner *ManualScheduler
	delay time.Duration
	fn    func()
	done  bool
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers fn to run on a later Fire.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) runtime.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &ManualTimer{owner: s, delay: d, fn: fn}
	s.pending = append(s.pending, t)
	s.delays = append(s.delays, d)
	if len(s.pending) > s.maxActive {
		s.maxActive = len(s.pending)
	}
	return t
}

// Stop cancels the timer if it hasn't fired.
func (t *ManualTimer) Stop() bool {
	s := t.owner
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	s.remove(t)
	return true
}

func (s *ManualScheduler) remove(t *ManualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Fire runs the oldest pending timer. It reports whether one was pending.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	t.done = true
	s.elapsed += t.delay
	s.mu.Unlock()

	t.fn()
	return true
}

// FireAll fires timers until none are pending, up to limit firings.
// It returns the number of timers fired.
func (s *ManualScheduler) FireAll(limit int) int {
	n := 0
	for n < limit && s.Fire() {
		n++
	}
	return n
}

// Active returns the number of pending timers.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// MaxActive returns the peak number of simultaneously pending timers.
func (s *ManualScheduler) MaxActive() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxActive
}

// Delays returns every delay requested so far.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)
	return out
}

// Elapsed returns the sum of the delays of fired timers.
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}
