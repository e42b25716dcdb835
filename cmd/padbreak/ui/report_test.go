package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"padbreak/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	t.Setenv("PADBREAK_DARK_MODE", "")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	t.Setenv("PADBREAK_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}

func TestReport(t *testing.T) {
	cts := [][]byte{
		{0x44, 0x78, 0xB9},
		{0x46, 0x1A, 0xDD},
		{0x40, 0x7C, 0xDE},
	}
	res, err := analysis.Recover(context.Background(), cts, analysis.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	rep := NewReport(&buf)
	for _, r := range res.Resolutions {
		rep.Resolution(r)
	}
	rep.Summary(res)

	out := buf.String()
	assert.Contains(t, out, "at index 1 for {0:1 1:2 2:1}")
	assert.Contains(t, out, "The maximum number of occurrence is 2 (ciphertexts [1])")
	assert.Contains(t, out, "Options: {0x1a:1}")
	assert.Contains(t, out, "Choose 0x1a -> key byte 0x3a")
	assert.Contains(t, out, "Found key: 003a99")
	assert.Contains(t, out, "Unresolved positions (1 of 3): [0]")
	assert.Contains(t, out, "Decoded message: @FG")
	assert.Equal(t, 2, strings.Count(out, "========"))
	assert.NotContains(t, out, "\x1b[", "non-terminal writers get plain text")
}

func TestReportTie(t *testing.T) {
	res, err := analysis.Recover(context.Background(), [][]byte{{0x51}, {0x10}}, analysis.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Resolutions, 1)

	var buf bytes.Buffer
	NewReport(&buf).Resolution(res.Resolutions[0])
	assert.Contains(t, buf.String(), "Choose 0x51 -> key byte 0x71 (tie broken by policy)")
}
