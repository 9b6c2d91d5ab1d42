package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHTMLShortTextIsOneChunk(t *testing.T) {
	chunks := splitHTML("short answer", 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short answer", chunks[0])
}

func TestSplitHTMLPrefersNewlineBreaks(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)

	chunks := splitHTML(text, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 60), chunks[0])
	assert.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitHTMLHardCutsWithoutNewlines(t *testing.T) {
	text := strings.Repeat("x", 250)

	chunks := splitHTML(text, 100)

	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}
