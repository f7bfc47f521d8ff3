package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutMarkdown(t *testing.T) {
	md := AboutMarkdown()
	assert.Contains(t, md, "1. 🏛️ **Government** (face 1)")
	assert.Contains(t, md, "4. 🌍 **Situation & Context** (face 4)")
}

func TestRunAbout_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunAbout(&buf, true, 80))
	assert.Contains(t, buf.String(), "Senior Management")
	assert.Contains(t, buf.String(), "Start Over")
}
