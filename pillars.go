package pillars

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/pillars/internal/logging"
	"github.com/aretw0/pillars/internal/runtime"
	"github.com/aretw0/pillars/pkg/domain"
)

// Action is what the primary control did when activated.
type Action string

const (
	ActionNone  Action = "none"
	ActionRoll  Action = "roll"
	ActionReset Action = "reset"
)

// Widget is one instance of the dice component.
// Every user event and timer callback runs serialized under a single lock,
// so the roll state behaves as if driven by a single-threaded event loop.
type Widget struct {
	mu     sync.Mutex
	closed bool
	done   chan struct{}

	seq     *runtime.Sequencer
	anim    *runtime.Animator
	streams *streamManager

	schedule  runtime.Schedule
	scheduler runtime.Scheduler
	faces     runtime.FaceSource
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time

	rollStarted time.Time
	last        domain.RollState
}

// New creates a widget with a fresh session.
func New(opts ...Option) (*Widget, error) {
	w := &Widget{
		done:      make(chan struct{}),
		seq:       runtime.NewSequencer(),
		streams:   newStreamManager(),
		schedule:  runtime.DefaultSchedule(),
		scheduler: runtime.SystemScheduler{},
		faces:     runtime.DefaultFaceSource(),
		logger:    logging.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.schedule.Validate(); err != nil {
		return nil, err
	}

	w.anim = runtime.NewAnimator(w.schedule,
		runtime.WithScheduler(w.scheduler),
		runtime.WithFaceSource(w.faces),
		runtime.WithExecutor(w.run),
	)
	w.last = w.seq.State()
	return w, nil
}

// run executes fn on the widget's event loop. After Close it does nothing.
func (w *Widget) run(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	fn()
}

// State returns a snapshot of the roll state.
func (w *Widget) State() domain.RollState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq.State()
}

// Schedule returns the animation schedule in use.
func (w *Widget) Schedule() runtime.Schedule {
	return w.schedule
}

// Done is closed once the widget has been torn down.
func (w *Widget) Done() <-chan struct{} {
	return w.done
}

// Roll starts the animation for the next category.
// It reports false, without any effect, while animating, after every
// category has been revealed, or after Close.
func (w *Widget) Roll() bool {
	var ok bool
	w.run(func() { ok = w.roll() })
	return ok
}

// Reset restores the initial state, cancelling an animation in flight.
func (w *Widget) Reset() {
	w.run(w.reset)
}

// Activate triggers the primary control: Start Over once every category is
// revealed, Roll otherwise.
func (w *Widget) Activate() Action {
	action := ActionNone
	w.run(func() {
		if w.seq.State().AllRevealed() {
			w.reset()
			action = ActionReset
			return
		}
		if w.roll() {
			action = ActionRoll
		}
	})
	return action
}

// Close tears the widget down: the pending tick (if any) is cancelled and no
// further state change, hook or notification happens. It is safe to call twice.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	interrupted := w.anim.Stop()
	w.closed = true
	w.emit(&domain.RollEvent{
		Type:        domain.EventTeardown,
		TargetIndex: w.targetIndex(interrupted),
		Interrupted: interrupted,
	})
	w.streams.CloseAll()
	close(w.done)
	w.logger.Debug("widget closed", "interrupted", interrupted)
}

// Subscribe returns a channel receiving the latest state after every change,
// starting with the current one. Slow readers only see the most recent snapshot.
// The returned function unsubscribes; the channel is closed on unsubscribe or Close.
func (w *Widget) Subscribe() (<-chan domain.RollState, func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, nil, domain.ErrWidgetClosed
	}
	ch, cancel := w.streams.Subscribe()
	w.streams.Offer(ch, w.seq.State())
	return ch, cancel, nil
}

func (w *Widget) roll() bool {
	target, ok := w.seq.RequestRoll()
	if !ok {
		w.logger.Debug("roll ignored", "current_index", w.seq.State().CurrentIndex)
		return false
	}

	w.rollStarted = w.now()
	w.emit(&domain.RollEvent{
		Type:        domain.EventRollStart,
		TargetIndex: target,
		Face:        w.seq.State().DisplayedFace,
	})
	w.publish()
	w.anim.Start(target, w.onTick, w.onDone)
	w.logger.Debug("roll started", "target", target, "ticks", w.schedule.Ticks)
	return true
}

func (w *Widget) onTick(tick int, face domain.Face) {
	w.seq.ShowFace(face)
	target := w.seq.State().NextIndex()
	w.emit(&domain.RollEvent{
		Type:        domain.EventTick,
		TargetIndex: target,
		Tick:        tick,
		Face:        face,
	})
	w.publish()
}

func (w *Widget) onDone(target int) {
	if !w.seq.CompleteRoll(target) {
		w.logger.Warn("stale roll completion dropped", "target", target)
		return
	}
	state := w.seq.State()
	category, _ := domain.CategoryAt(target)
	elapsed := w.now().Sub(w.rollStarted)

	w.emit(&domain.RollEvent{
		Type:        domain.EventRollComplete,
		TargetIndex: target,
		Face:        state.DisplayedFace,
		Category:    category.Name,
		Elapsed:     elapsed,
	})
	w.publish()
	w.logger.Debug("roll completed", "target", target, "category", category.Name, "elapsed", elapsed)
}

func (w *Widget) reset() {
	interrupted := w.anim.Stop()
	target := w.targetIndex(interrupted)
	w.seq.Reset()
	w.emit(&domain.RollEvent{
		Type:        domain.EventReset,
		TargetIndex: target,
		Face:        domain.MinFace,
		Interrupted: interrupted,
	})
	w.publish()
	w.logger.Debug("session reset", "interrupted", interrupted)
}

// targetIndex returns the position of the roll in flight, or -1.
func (w *Widget) targetIndex(animating bool) int {
	if !animating {
		return -1
	}
	return w.seq.State().NextIndex()
}

func (w *Widget) emit(e *domain.RollEvent) {
	e.Timestamp = w.now()
	w.hooks.Emit(e)
}

func (w *Widget) publish() {
	state := w.seq.State()
	if w.logger.Enabled(context.Background(), slog.LevelDebug) {
		if diff := domain.Diff(&w.last, &state); diff != nil {
			w.logger.Debug("state changed", "diff", diff)
		}
	}
	w.last = state
	w.streams.Broadcast(state)
}
