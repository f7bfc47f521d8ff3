package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/pillars/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner outputs the title line, each pillar glyph tinted with its accent.
func PrintBanner(w io.Writer, version string, profile termenv.Profile) {
	title := profile.String("🎲 Strategic Pillars Dice").Bold().Foreground(profile.Color("#f1f5f9"))

	glyphs := make([]string, 0, domain.CategoryCount)
	for _, c := range domain.Categories {
		glyphs = append(glyphs, profile.String(c.Glyph+" "+c.Name).Foreground(profile.Color(c.Accent)).String())
	}
	ver := profile.String("v" + strings.TrimSpace(version)).Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", title, ver)
	fmt.Fprintf(w, "  %s\n", strings.Join(glyphs, "  "))
	fmt.Fprintln(w)
}
