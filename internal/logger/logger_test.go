package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	l, err := New(Options{Level: "debug", File: path, Prefix: "pbj", Stderr: io.Discard})
	require.NoError(t, err)

	l.Echo("hello")
	l.Debug("level generated", "seed", 42)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[0], "pbj")
	assert.Contains(t, lines[1], "seed=42")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "level generated")
}

func TestLevelFilters(t *testing.T) {
	l, err := New(Options{Level: "warn", Stderr: io.Discard})
	require.NoError(t, err)

	l.Info("quiet")
	l.Warn("loud")
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "loud")
}

func TestBadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty", Stderr: io.Discard})
	assert.Error(t, err)
}

func TestHistoryBounded(t *testing.T) {
	h := &history{}
	for i := 0; i < maxLines+10; i++ {
		fmt.Fprintf(h, "line %d\n", i)
	}
	_, _ = h.Write([]byte("partial"))
	lines := h.lines()
	require.Len(t, lines, maxLines)
	assert.Equal(t, "line 10", lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", maxLines+9), lines[len(lines)-1])

	_, _ = h.Write([]byte(" done\n"))
	lines = h.lines()
	assert.Equal(t, "partial done", lines[len(lines)-1])
}

func TestWriterSplitsLines(t *testing.T) {
	l, err := New(Options{Stderr: io.Discard})
	require.NoError(t, err)

	fmt.Fprint(l.Writer(), "/help    list commands\n/reset   start over\n")
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "list commands")
	assert.Contains(t, lines[1], "start over")
}
