package cli

import (
	"os"

	"github.com/aretw0/pillars/internal/config"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// terminal describes the standard streams the session runs on.
type terminal struct {
	interactive bool
	width       int
}

func detectTerminal() terminal {
	in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	t := terminal{interactive: term.IsTerminal(in) && term.IsTerminal(out)}
	if w, _, err := term.GetSize(out); err == nil {
		t.width = w
	}
	return t
}

// useTUI decides the front-end: the full screen TUI needs a terminal on both ends.
func useTUI(mode config.Mode, t terminal) bool {
	switch mode {
	case config.ModeTUI:
		return true
	case config.ModePlain:
		return false
	}
	return t.interactive
}

func colorProfile(noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
