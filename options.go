package pillars

import (
	"log/slog"
	"time"

	"github.com/aretw0/pillars/internal/runtime"
	"github.com/aretw0/pillars/pkg/domain"
)

// Option defines a functional option for configuring the Widget.
type Option func(*Widget)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Widget) {
		w.hooks = hooks
	}
}

// WithTiming overrides the animation schedule: the number of ticks, the wait
// before the first tick, and the extra wait added per fired tick.
func WithTiming(ticks int, base, step time.Duration) Option {
	return func(w *Widget) {
		w.schedule = runtime.Schedule{Ticks: ticks, BaseDelay: base, StepDelay: step}
	}
}

// WithSchedule sets the animation schedule.
func WithSchedule(s runtime.Schedule) Option {
	return func(w *Widget) {
		w.schedule = s
	}
}

// WithScheduler replaces the timer implementation.
func WithScheduler(s runtime.Scheduler) Option {
	return func(w *Widget) {
		w.scheduler = s
	}
}

// WithFaceSource sets the generator of the cosmetic rolling faces.
func WithFaceSource(f runtime.FaceSource) Option {
	return func(w *Widget) {
		w.faces = f
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}
