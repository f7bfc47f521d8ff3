package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n", termenv.Ascii)

	out := buf.String()
	assert.Contains(t, out, "Strategic Pillars Dice")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "🏛️ Government")
	assert.Contains(t, out, "🌍 Situation & Context")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewRenderer_Plain(t *testing.T) {
	render := NewRenderer(true, 60)
	out, err := render("# Pillars\n\n1. **Government**\n")
	assert.NoError(t, err)
	assert.Contains(t, out, "Pillars")
	assert.Contains(t, out, "Government")
}
