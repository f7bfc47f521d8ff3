// Package text renders the widget as plain terminal lines, for pipes and dumb terminals.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/pillars/internal/presentation/view"
	"github.com/aretw0/pillars/pkg/domain"
	"github.com/muesli/termenv"
)

var dieGlyphs = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Renderer writes frames for successive roll states.
type Renderer struct {
	out     io.Writer
	profile termenv.Profile
	width   int
}

// NewRenderer creates a renderer. Use termenv.Ascii to disable colors.
func NewRenderer(out io.Writer, profile termenv.Profile, width int) *Renderer {
	return &Renderer{out: out, profile: profile, width: width}
}

// Render writes the output for the transition from prev to s.
// Settled states get a full frame, ticks a single flicker line.
func (r *Renderer) Render(prev, s domain.RollState) {
	if s.IsAnimating && prev.IsAnimating {
		fmt.Fprintln(r.out, r.Tick(s))
		return
	}
	fmt.Fprint(r.out, r.Frame(s))
}

// Tick is the compact line printed while rolling.
func (r *Renderer) Tick(s domain.RollState) string {
	return fmt.Sprintf("  rolling %s %d", dieGlyph(s.DisplayedFace), s.DisplayedFace)
}

// Frame draws the full widget.
func (r *Renderer) Frame(s domain.RollState) string {
	v := view.Build(s)
	var b strings.Builder

	b.WriteString(r.rule())
	fmt.Fprintf(&b, "%s\n", r.profile.String(v.Title).Bold())
	fmt.Fprintf(&b, "%s\n\n", r.profile.String(v.Status).Faint())

	for _, row := range view.Grid(v.Face) {
		cells := make([]string, 0, len(row))
		for _, on := range row {
			if on {
				cells = append(cells, "●")
			} else {
				cells = append(cells, "·")
			}
		}
		line := r.profile.String(" " + strings.Join(cells, " ") + " ").Foreground(r.profile.Color("#ffffff")).Background(r.profile.Color(v.DieAccent))
		fmt.Fprintf(&b, "    %s\n", line)
	}
	b.WriteString("\n")

	if v.Banner != nil {
		name := r.profile.String(v.Banner.Name).Bold().Foreground(r.profile.Color(v.Banner.Accent))
		fmt.Fprintf(&b, "  %s %s\n\n", v.Banner.Glyph, name)
	}

	for _, e := range v.Trail {
		chip := r.profile.String(e.Glyph + " " + e.Label()).Foreground(r.profile.Color(e.Accent))
		fmt.Fprintf(&b, "  %s\n", chip)
	}
	if len(v.Trail) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "[%s]%s\n", v.Control.Label, hint(v.Control))
	return b.String()
}

func hint(c view.Control) string {
	if !c.Enabled {
		return ""
	}
	return "  press enter, q to quit"
}

func (r *Renderer) rule() string {
	w := r.width
	if w <= 0 || w > 60 {
		w = 60
	}
	return strings.Repeat("─", w) + "\n"
}

func dieGlyph(f domain.Face) string {
	return dieGlyphs[f.Clamp()-1]
}
