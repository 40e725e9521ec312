// Package debug draws optional text overlays in the top-right corner: frame rate, heap use
// and the avatar's state. All overlays are off by default.
package debug

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"

	"pbj/internal/config"
	"pbj/internal/game"
	"pbj/internal/graphics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Text is rebuilt every updateInterval frames to limit allocations.
	updateInterval = 30
)

// Debug holds the overlay switches and the last formatted text.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowAvatar   bool

	text       graphics.Text
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug with the overlays enabled in cfg.
func New(cfg config.Debug) *Debug {
	return &Debug{
		ShowFPS:      cfg.ShowFPS,
		ShowMemAlloc: cfg.ShowMemAlloc,
		ShowAvatar:   cfg.ShowAvatar,
	}
}

// SetText sets the font the overlays are drawn with.
func (d *Debug) SetText(text graphics.Text) {
	d.text = text
}

// Toggle flips the overlay called name ("fps", "mem" or "avatar").
func (d *Debug) Toggle(name string) error {
	switch name {
	case "fps":
		d.ShowFPS = !d.ShowFPS
	case "mem":
		d.ShowMemAlloc = !d.ShowMemAlloc
	case "avatar":
		d.ShowAvatar = !d.ShowAvatar
	default:
		return fmt.Errorf("unknown overlay %q (want fps, mem or avatar)", name)
	}
	d.lines = nil
	return nil
}

// Config returns the overlay switches in config form.
func (d *Debug) Config() config.Debug {
	return config.Debug{ShowFPS: d.ShowFPS, ShowMemAlloc: d.ShowMemAlloc, ShowAvatar: d.ShowAvatar}
}

// Any reports whether some overlay is on.
func (d *Debug) Any() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowAvatar
}

// Lines formats the enabled overlays.
func (d *Debug) Lines(fps int32, heap uint64, s game.Snapshot) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowMemAlloc {
		out = append(out, "Mem: "+humanize.IBytes(heap))
	}
	if d.ShowAvatar {
		out = append(out,
			fmt.Sprintf("Seed: %d", s.Seed),
			fmt.Sprintf("Pos: %.2f, %.2f", s.Position.X(), s.Position.Y()),
			fmt.Sprintf("Vel: %.3f, %.3f", s.Velocity.X(), s.Velocity.Y()),
			"Held: "+s.Held.String(),
		)
	}
	return out
}

// Draw renders the enabled overlays. Call after the scene and the console.
func (d *Debug) Draw(s game.Snapshot) {
	if !d.Any() {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		var heap uint64
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.memStats)
			heap = d.memStats.Alloc
		}
		d.lines = d.Lines(rl.GetFPS(), heap, s)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := d.text.Measure(text, fontSize)
		d.text.Draw(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
