// Package logger wraps charmbracelet/log for the game: records go to stderr, an append-only
// log file, and a short in-memory history that the in-game console draws.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFilePath is where the game log is appended, relative to the working directory.
const DefaultFilePath = "logs/game.log"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 256

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // appended to when non-empty
	Prefix string    // shown before every record
	Stderr io.Writer // defaults to os.Stderr; set to io.Discard to silence
}

// Logger is a charmbracelet logger that also keeps its recent lines in memory so the
// in-game console can show them.
type Logger struct {
	*log.Logger
	history *history
	file    *os.File
}

// New returns a Logger writing to stderr, the optional log file, and the in-memory history.
// The logs directory is created if needed.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = lvl
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	h := &history{}
	writers := []io.Writer{stderr, h}
	var f *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		var err error
		f, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		writers = append(writers, f)
	}

	l := log.NewWithOptions(io.MultiWriter(writers...), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{Logger: l, history: h, file: f}, nil
}

// Echo records a line typed into the console.
func (l *Logger) Echo(line string) {
	l.Info(line)
}

// Writer returns an io.Writer that logs each line written to it at info level. Command
// output goes through it so it shows up in the console and the log file.
func (l *Logger) Writer() io.Writer {
	return lineWriter{l}
}

type lineWriter struct{ l *Logger }

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			w.l.Info(line)
		}
	}
	return len(p), nil
}

// Lines returns a copy of the recent log lines, oldest first.
func (l *Logger) Lines() []string {
	return l.history.lines()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// history is an io.Writer that keeps the last maxLines complete lines.
type history struct {
	mu      sync.Mutex
	partial []byte
	buf     []string
}

func (h *history) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	data := append(h.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		h.buf = append(h.buf, strings.TrimRight(string(data[:i]), "\r"))
		data = data[i+1:]
	}
	h.partial = append(h.partial[:0:0], data...)
	if over := len(h.buf) - maxLines; over > 0 {
		h.buf = append(h.buf[:0:0], h.buf[over:]...)
	}
	return len(p), nil
}

func (h *history) lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.buf))
	copy(out, h.buf)
	return out
}
