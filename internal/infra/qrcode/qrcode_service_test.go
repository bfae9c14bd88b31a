package qrcode

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewRenderer(tt.errorCorrectionLevel)
			assert.NotNil(t, renderer)

			out, err := renderer.Terminal("http://localhost:8080/oauth2/authorize?state=abc")
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestRenderer_TerminalIsSquare(t *testing.T) {
	out, err := NewRenderer("L").Terminal("http://127.0.0.1:8765/callback")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line))
	}
	// Two bitmap rows per line, rounded up.
	assert.Equal(t, (width+1)/2, len(lines))
}

func TestRender(t *testing.T) {
	bitmap := [][]bool{
		{false, true, false, true},
		{false, false, true, true},
		{true, true, true, true},
	}

	assert.Equal(t, "█▄▀ \n    \n", render(bitmap))
}

func TestRenderer_TerminalRejectsOversizedContent(t *testing.T) {
	_, err := NewRenderer("H").Terminal(strings.Repeat("x", 4000))

	assert.Error(t, err)
}
