package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/aretw0/pillars"
	"github.com/aretw0/pillars/internal/presentation/text"
	"github.com/aretw0/pillars/pkg/domain"
)

type command int

const (
	cmdActivate command = iota
	cmdReset
	cmdQuit
	cmdUnknown
)

func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "roll":
		return cmdActivate
	case "r", "reset":
		return cmdReset
	case "q", "quit", "exit":
		return cmdQuit
	}
	return cmdUnknown
}

// RunPlain drives the widget from line input: Enter triggers the primary
// control, "r" starts over once every pillar is revealed, "q" or EOF quits.
// A quit requested mid-roll waits for the roll to settle. The widget is torn
// down before RunPlain returns.
func RunPlain(ctx context.Context, w *pillars.Widget, in io.Reader, r *text.Renderer) (domain.RollState, error) {
	defer w.Close()

	updates, unsubscribe, err := w.Subscribe()
	if err != nil {
		return w.State(), err
	}
	defer unsubscribe()

	commands := pumpInput(in, w.Done())

	var prev domain.RollState
	quitting := false
	for {
		select {
		case <-ctx.Done():
			return w.State(), ctx.Err()

		case s, ok := <-updates:
			if !ok {
				return w.State(), nil
			}
			r.Render(prev, s)
			prev = s
			if quitting && !s.IsAnimating {
				return s, nil
			}

		case c, ok := <-commands:
			if !ok {
				// EOF behaves like quit.
				commands = nil
				c = cmdQuit
			}
			switch c {
			case cmdActivate:
				w.Activate()
			case cmdReset:
				if w.State().AllRevealed() {
					w.Reset()
				}
			case cmdQuit:
				quitting = true
				commands = nil
				if s := w.State(); !s.IsAnimating {
					return s, nil
				}
			}
		}
	}
}

// pumpInput reads lines on a goroutine. The channel is closed on EOF or read error.
// A blocked read cannot be interrupted, so the goroutine may outlive the session.
func pumpInput(in io.Reader, done <-chan struct{}) <-chan command {
	out := make(chan command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case out <- parseCommand(scanner.Text()):
			case <-done:
				return
			}
		}
	}()
	return out
}
