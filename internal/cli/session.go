package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/aretw0/pillars"
	httpAdapter "github.com/aretw0/pillars/internal/adapters/http"
	"github.com/aretw0/pillars/internal/config"
	"github.com/aretw0/pillars/internal/logging"
	"github.com/aretw0/pillars/internal/metrics"
	"github.com/aretw0/pillars/internal/presentation/text"
	"github.com/aretw0/pillars/internal/presentation/tui"
	"github.com/aretw0/pillars/internal/presentation/view"
	"github.com/aretw0/pillars/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession runs one interactive session with the given configuration.
func RunSession(cfg config.Config) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	tty := detectTerminal()
	fullScreen := useTUI(cfg.Display.Mode, tty)
	profile := colorProfile(cfg.Display.NoColor)

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := createLogger(level, cfg.Log.File, fullScreen)
	if err != nil {
		return err
	}
	defer closer.Close()

	hooks := []domain.LifecycleHooks{}
	if level <= slog.LevelDebug {
		hooks = append(hooks, createDebugHooks(logger))
	}

	stopMetrics := func() {}
	if cfg.Metrics.Addr != "" {
		collector, stop, err := startMetrics(sigCtx, cfg.Metrics.Addr, logger)
		if err != nil {
			return err
		}
		hooks = append(hooks, collector.Hooks())
		stopMetrics = stop
	}
	defer stopMetrics()

	w, err := pillars.New(
		pillars.WithLogger(logger),
		pillars.WithLifecycleHooks(domain.ChainHooks(hooks...)),
		pillars.WithSchedule(cfg.Schedule()),
	)
	if err != nil {
		return fmt.Errorf("error initializing widget: %w", err)
	}
	logger.Info("Session Started", "tui", fullScreen, "ticks", cfg.Animation.Ticks, "metrics", cfg.Metrics.Addr)

	var state domain.RollState
	if fullScreen {
		tui.PrintBanner(os.Stdout, pillars.Version, profile)
		state, err = tui.Run(sigCtx, w)
	} else {
		r := text.NewRenderer(os.Stdout, profile, tty.width)
		state, err = RunPlain(sigCtx, w, os.Stdin, r)
	}

	// If context was canceled (signal received), ensure err reflects it if it doesn't already
	if sigCtx.Err() != nil && err == nil {
		err = sigCtx.Err()
	}
	logger.Info("Session Ended", "revealed", len(state.History), "err", err)

	if err == nil || isInterrupted(err) {
		printSummary(state, !fullScreen || cfg.Display.NoColor, tty.width)
	}
	logCompletion(os.Stdout, state, err, sigCtx.Signal())

	return handleExecutionError(err)
}

// startMetrics registers the collectors on a fresh registry and serves them
// until the returned stop function is called.
func startMetrics(ctx context.Context, addr string, logger *slog.Logger) (*metrics.Collector, func(), error) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return nil, nil, err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := httpAdapter.ServeListener(ctx, ln, httpAdapter.NewHandler(reg), logger); err != nil {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return collector, func() {
		cancel()
		<-done
	}, nil
}

func printSummary(state domain.RollState, plain bool, width int) {
	if len(state.History) == 0 {
		return
	}
	render := tui.NewRenderer(plain, width)
	out, err := render(view.Summary(state))
	if err != nil {
		out = view.Summary(state)
	}
	fmt.Fprint(os.Stdout, out)
}
