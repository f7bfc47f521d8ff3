package runtime

import "github.com/aretw0/pillars/pkg/domain"

// TickFunc receives every cosmetic face, with the 1-based tick number.
type TickFunc func(tick int, face domain.Face)

// DoneFunc is called once after the last tick with the roll's target position.
type DoneFunc func(target int)

// Animator drives the tick sequence of a single roll.
// It owns at most one pending timer, released on the last tick or on Stop.
// Like the Sequencer, it expects its owner to serialize calls; timer callbacks
// are routed through the configured Executor for that reason.
type Animator struct {
	schedule  Schedule
	scheduler Scheduler
	faces     FaceSource
	exec      Executor

	timer   Timer
	gen     uint64
	running bool
	tick    int
	target  int
	onTick  TickFunc
	onDone  DoneFunc
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithScheduler replaces the runtime timers (tests use a manual scheduler).
func WithScheduler(s Scheduler) AnimatorOption {
	return func(a *Animator) {
		a.scheduler = s
	}
}

// WithFaceSource sets the generator of cosmetic faces.
func WithFaceSource(f FaceSource) AnimatorOption {
	return func(a *Animator) {
		a.faces = f
	}
}

// WithExecutor routes timer callbacks through the owner's event loop.
func WithExecutor(e Executor) AnimatorOption {
	return func(a *Animator) {
		a.exec = e
	}
}

// NewAnimator creates an idle animator for the given schedule.
func NewAnimator(schedule Schedule, opts ...AnimatorOption) *Animator {
	a := &Animator{
		schedule:  schedule,
		scheduler: SystemScheduler{},
		faces:     DefaultFaceSource(),
		exec:      inline,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Schedule returns the animator's tick schedule.
func (a *Animator) Schedule() Schedule {
	return a.schedule
}

// Running reports whether a tick sequence is in flight.
func (a *Animator) Running() bool {
	return a.running
}

// Tick returns the number of ticks fired in the current sequence.
func (a *Animator) Tick() int {
	return a.tick
}

// Start begins the tick sequence for target. It refuses to start a second sequence.
func (a *Animator) Start(target int, onTick TickFunc, onDone DoneFunc) bool {
	if a.running {
		return false
	}
	a.running = true
	a.tick = 0
	a.target = target
	a.onTick = onTick
	a.onDone = onDone
	a.arm()
	return true
}

// Stop cancels the sequence in flight and releases its timer.
// It reports whether a sequence was running. onDone is not called.
func (a *Animator) Stop() bool {
	if !a.running {
		return false
	}
	a.release()
	return true
}

func (a *Animator) arm() {
	gen := a.gen
	a.timer = a.scheduler.AfterFunc(a.schedule.Delay(a.tick), func() {
		a.exec(func() { a.fire(gen) })
	})
}

func (a *Animator) fire(gen uint64) {
	// A callback that lost the race against Stop belongs to a released sequence.
	if !a.running || gen != a.gen {
		return
	}
	a.timer = nil
	a.tick++

	if a.onTick != nil {
		a.onTick(a.tick, a.faces.Face().Clamp())
		if !a.running || gen != a.gen {
			return
		}
	}

	if a.tick < a.schedule.Ticks {
		a.arm()
		return
	}

	target, done := a.target, a.onDone
	a.release()
	if done != nil {
		done(target)
	}
}

func (a *Animator) release() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.running = false
	a.gen++
	a.onTick = nil
	a.onDone = nil
}
