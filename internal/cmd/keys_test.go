package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/micenotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintKeysPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printKeys(&buf, false))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	for _, b := range models.Behaviors() {
		assert.Contains(t, out, b.Label)
		assert.Contains(t, out, b.Color)
	}
	assert.Contains(t, out, "a       Allogrooming   #0000CC\n")
	assert.Contains(t, out, "space   pause / resume\n")
	assert.Contains(t, out, "q       quit (ignored while paused)\n")
}

func TestPrintKeysColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printKeys(&buf, true))

	out := buf.String()
	assert.Contains(t, out, "\x1b[38;2;153;255;102m", "Other swatch uses its table colour")
	assert.Equal(t, len(models.Behaviors()), strings.Count(out, "██"))
}

func TestKeysCommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BEHAVIOR")
	assert.Contains(t, stdout, "Nesting")
}
