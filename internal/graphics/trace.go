package graphics

import (
	"sync"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TraceLog routes raylib's trace output into a logger. While a capture is open, warnings
// and errors are also collected for error reports.
type TraceLog struct {
	log *log.Logger

	mu       sync.Mutex
	captured []string
	open     bool
}

// NewTraceLog installs a raylib trace callback that writes to l. Call before OpenWindow so
// context creation is logged too.
func NewTraceLog(l *log.Logger) *TraceLog {
	t := &TraceLog{log: l.WithPrefix("raylib")}
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(t.write)
	return t
}

func (t *TraceLog) write(level int, text string) {
	lvl := rl.TraceLogLevel(level)
	switch {
	case lvl >= rl.LogError:
		t.log.Error(text)
	case lvl == rl.LogWarning:
		t.log.Warn(text)
	default:
		t.log.Debug(text)
		return
	}
	t.mu.Lock()
	if t.open {
		t.captured = append(t.captured, text)
	}
	t.mu.Unlock()
}

type capture struct {
	t *TraceLog
}

func (t *TraceLog) capture() capture {
	t.mu.Lock()
	t.open = true
	t.captured = nil
	t.mu.Unlock()
	return capture{t: t}
}

// stop closes the capture and returns what it collected.
func (c capture) stop() []string {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	c.t.open = false
	out := c.t.captured
	c.t.captured = nil
	return out
}
