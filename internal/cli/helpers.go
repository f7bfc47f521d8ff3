package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/pillars/internal/logging"
	"github.com/aretw0/pillars/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createLogger configures the application logger.
// With a log file everything goes there. Without one, logs go to stderr,
// except in TUI mode where stderr would tear the screen and logs are dropped.
func createLogger(level slog.Level, file string, tui bool) (*slog.Logger, io.Closer, error) {
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewWithWriter(f, level), f, nil
	}
	if tui {
		return logging.NewNop(), nopCloser{}, nil
	}
	return logging.New(level), nopCloser{}, nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRollStart: func(e *domain.RollEvent) {
			logger.Debug("Roll Start", "target", e.TargetIndex)
		},
		OnTick: func(e *domain.RollEvent) {
			logger.Debug("Tick", "target", e.TargetIndex, "tick", e.Tick, "face", e.Face)
		},
		OnRollComplete: func(e *domain.RollEvent) {
			logger.Debug("Roll Complete", "target", e.TargetIndex, "category", e.Category, "elapsed", e.Elapsed)
		},
		OnReset: func(e *domain.RollEvent) {
			if e.Interrupted {
				logger.Debug("Reset (Interrupted Roll)", "target", e.TargetIndex)
			} else {
				logger.Debug("Reset")
			}
		},
		OnTeardown: func(e *domain.RollEvent) {
			logger.Debug("Teardown", "interrupted", e.Interrupted)
		},
	}
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, state domain.RollState, err error, sig os.Signal) {
	revealed := len(state.History)
	switch {
	case err == nil:
		printSystemMessage(w, "Finished with %d of %d pillars revealed.", revealed, domain.CategoryCount)
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted with %d of %d pillars revealed.", revealed, domain.CategoryCount)
	case sig != nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated with %d of %d pillars revealed.", revealed, domain.CategoryCount)
	case isInterrupted(err):
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Interrupted with %d of %d pillars revealed.", revealed, domain.CategoryCount)
	}
}
