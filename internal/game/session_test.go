package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbj/internal/board"
	"pbj/internal/config"
	"pbj/internal/controls"
	"pbj/internal/meshes"
	"pbj/internal/render"
)

func testMeshes(t *testing.T) render.Meshes {
	t.Helper()
	entries := make([]meshes.Entry, 0, len(render.Required))
	for _, name := range render.Required {
		entries = append(entries, meshes.Entry{Name: name, Vertices: make([]meshes.Vertex, 3)})
	}
	c, err := meshes.Load(meshes.Encode(entries))
	require.NoError(t, err)
	m, err := render.ResolveMeshes(c)
	require.NoError(t, err)
	return m
}

func newSession(t *testing.T, seed uint64) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	s, err := New(opts, testMeshes(t), log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestNewGeneratesLevel(t *testing.T) {
	s := newSession(t, 99)
	snap := s.Snapshot()

	assert.Equal(t, uint64(99), snap.Seed)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, snap.Position)
	assert.NotEqual(t, s.ID.String(), "")

	b := s.Board()
	edges := map[board.Edge]bool{}
	for _, k := range board.Keys {
		e, ok := b.EdgeOf(snap.Keys[k])
		require.True(t, ok, "%s at %s", k, snap.Keys[k])
		edges[e] = true
	}
	assert.Len(t, edges, 4)
}

func TestSameSeedSameLevel(t *testing.T) {
	a := newSession(t, 7)
	b := newSession(t, 7)
	assert.Equal(t, a.Snapshot().Keys, b.Snapshot().Keys)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestZeroSeedPicksOne(t *testing.T) {
	s := newSession(t, 0)
	assert.NotZero(t, s.Snapshot().Seed)
}

func TestEventUpdateFrame(t *testing.T) {
	s := newSession(t, 3)

	assert.True(t, s.HandleEvent(controls.Event{Type: controls.KeyDown, Key: "D"}))
	assert.False(t, s.HandleEvent(controls.Event{Type: controls.KeyDown, Key: "D", Repeat: true}))
	assert.False(t, s.HandleEvent(controls.Event{Type: controls.KeyDown, Key: "Space"}))

	for i := 0; i < 100; i++ {
		s.Update(1.0 / 60)
	}
	snap := s.Snapshot()
	assert.True(t, snap.Held.Right)
	assert.InDelta(t, 4, snap.Position.X(), 1e-6, "clamped at width-2")
	assert.InDelta(t, 1, snap.Position.Y(), 1e-6)

	f := s.Frame(1280, 720)
	avatar := f.Calls[len(f.Calls)-1-board.NumKeys]
	assert.InDelta(t, 4.5, avatar.ObjectToWorld.At(0, 3), 1e-6)

	assert.True(t, s.HandleEvent(controls.Event{Type: controls.KeyUp, Key: "D"}))
	s.Update(1.0 / 60)
	assert.Zero(t, s.Snapshot().Velocity.X())
}

func TestRegenerateAndReset(t *testing.T) {
	s := newSession(t, 11)
	first := s.Snapshot().Keys

	found := false
	for seed := uint64(12); seed < 40; seed++ {
		require.NoError(t, s.Regenerate(seed))
		if s.Snapshot().Keys != first {
			found = true
			break
		}
	}
	assert.True(t, found, "different seeds should eventually give a different layout")

	s.HandleEvent(controls.Event{Type: controls.KeyDown, Key: "W"})
	s.Update(0.5)
	require.NotEqual(t, mgl32.Vec3{1, 1, 0}, s.Snapshot().Position)

	s.Reset()
	snap := s.Snapshot()
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, snap.Position)
	assert.Equal(t, controls.State{}, snap.Held)
	assert.Zero(t, snap.Velocity.Len())
}

func TestReleaseControls(t *testing.T) {
	s := newSession(t, 5)
	s.HandleEvent(controls.Event{Type: controls.KeyDown, Key: "A"})
	s.ReleaseControls()
	assert.Equal(t, controls.State{}, s.Snapshot().Held)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Up = "Up"
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, controls.Up, opts.Bindings["UP"])
	assert.InDelta(t, 1.0, opts.Lighting.SunDirection.Len(), 1e-6)

	cfg = config.Default()
	cfg.Board.Width = 2
	_, err = OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, board.ErrBoardTooSmall)

	cfg = config.Default()
	cfg.Controls.Down = "W"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}

func TestResetClampsStartIntoInnerRing(t *testing.T) {
	tests := []struct {
		start mgl32.Vec3
		want  mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0}},
		{mgl32.Vec3{40, -7, 0}, mgl32.Vec3{4, 1, 0}},
		{mgl32.Vec3{2.5, 3, 0}, mgl32.Vec3{2.5, 3, 0}},
	}
	for _, tc := range tests {
		opts, err := OptionsFromConfig(config.Default())
		require.NoError(t, err)
		opts.Seed = 7
		opts.Start = tc.start
		s, err := New(opts, testMeshes(t), nil)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			s.Update(1.0 / 60)
		}
		assert.Equal(t, tc.want, s.Snapshot().Position, "start %v", tc.start)
	}
}
