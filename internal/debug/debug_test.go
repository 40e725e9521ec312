package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbj/internal/config"
	"pbj/internal/controls"
	"pbj/internal/game"
)

func TestLinesFollowSwitches(t *testing.T) {
	d := New(config.Debug{})
	assert.False(t, d.Any())
	assert.Empty(t, d.Lines(60, 0, game.Snapshot{}))

	d.ShowFPS = true
	d.ShowMemAlloc = true
	assert.Equal(t, []string{"FPS: 60", "Mem: 2.0 MiB"}, d.Lines(60, 2<<20, game.Snapshot{}))
}

func TestAvatarLines(t *testing.T) {
	d := New(config.Debug{ShowAvatar: true})
	lines := d.Lines(0, 0, game.Snapshot{
		Seed:     42,
		Position: mgl32.Vec3{1.5, 2, 0},
		Velocity: mgl32.Vec3{0.1, 0, 0},
		Held:     controls.State{Right: true},
	})
	assert.Equal(t, []string{
		"Seed: 42",
		"Pos: 1.50, 2.00",
		"Vel: 0.100, 0.000",
		"Held: right",
	}, lines)
}

func TestToggle(t *testing.T) {
	d := New(config.Debug{ShowFPS: true})
	require.NoError(t, d.Toggle("fps"))
	assert.False(t, d.ShowFPS)
	require.NoError(t, d.Toggle("avatar"))
	assert.True(t, d.ShowAvatar)
	assert.Error(t, d.Toggle("grid"))
	assert.Equal(t, config.Debug{ShowAvatar: true}, d.Config())
}
