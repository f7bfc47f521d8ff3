package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/pillars/internal/presentation/tui"
	"github.com/aretw0/pillars/pkg/domain"
)

// AboutMarkdown describes the pillars and how a session plays out.
func AboutMarkdown() string {
	var b strings.Builder
	b.WriteString("# Strategic Pillars Dice\n\n")
	b.WriteString("Roll the die once per pillar to reveal them in order:\n\n")
	for i, c := range domain.Categories {
		fmt.Fprintf(&b, "%d. %s **%s** (face %d)\n", i+1, c.Glyph, c.Name, domain.FaceFor(i))
	}
	b.WriteString("\n## Rules\n\n")
	b.WriteString("- Each roll flickers through random faces, then settles on the pillar's face.\n")
	b.WriteString("- You cannot roll again while the die is rolling.\n")
	b.WriteString("- Once all four pillars are revealed, **Start Over** clears the trail.\n")
	b.WriteString("\n## Keys\n\n")
	b.WriteString("- `enter` / `space`: roll, or start over when done\n")
	b.WriteString("- `r`: start over when done\n")
	b.WriteString("- `q`: quit\n")
	return b.String()
}

// RunAbout renders AboutMarkdown to w.
func RunAbout(w io.Writer, plain bool, width int) error {
	out, err := tui.NewRenderer(plain, width)(AboutMarkdown())
	if err != nil {
		return fmt.Errorf("failed to render about: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
