// Package game is one play session: the board and its key layout, the held controls, and
// the avatar. The frame loop calls HandleEvent, Update and Frame in that order.
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"pbj/internal/board"
	"pbj/internal/controls"
	"pbj/internal/motion"
	"pbj/internal/render"
)

// Session owns all mutable game state. It is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	opts     Options
	meshes   render.Meshes
	log      *log.Logger
	seed     uint64
	keys     board.KeyLocations
	controls *controls.Controls
	avatar   *motion.Avatar
}

// Snapshot is a read-only view of the session for overlays and tests.
type Snapshot struct {
	Seed     uint64
	Keys     board.KeyLocations
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Held     controls.State
}

// New starts a session and generates its first level. A nil logger discards output.
func New(opts Options, m render.Meshes, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		ID:       uuid.New(),
		opts:     opts,
		meshes:   m,
		controls: controls.New(opts.Bindings),
	}
	s.log = logger.With("session", s.ID.String())
	s.Reset()
	if err := s.Regenerate(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate lays out a new level from seed, or from the clock when seed is 0.
func (s *Session) Regenerate(seed uint64) error {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	keys, err := board.Generate(s.opts.Board, rng)
	if err != nil {
		return err
	}
	s.seed = seed
	s.keys = keys
	s.log.Info("level generated",
		"seed", seed,
		"peanut", keys[board.Peanut],
		"bread", keys[board.Bread],
		"jelly", keys[board.Jelly],
		"serve", keys[board.Serve])
	return nil
}

// Reset puts the avatar back at its start cell at rest and releases all controls. A start
// outside the board's inner ring is clamped onto it.
func (s *Session) Reset() {
	start := s.opts.Start
	minX, maxX, minY, maxY := s.opts.Board.Inner()
	start[0] = mgl32.Clamp(start[0], minX, maxX)
	start[1] = mgl32.Clamp(start[1], minY, maxY)
	s.avatar = motion.NewAvatar(start)
	s.controls.Reset()
}

// HandleEvent feeds a key event to the controls and reports whether it was consumed.
func (s *Session) HandleEvent(ev controls.Event) bool {
	return s.controls.Handle(ev)
}

// ReleaseControls drops every held direction, e.g. when another consumer takes the keyboard.
func (s *Session) ReleaseControls() {
	s.controls.Reset()
}

// Update advances the avatar by elapsed seconds.
func (s *Session) Update(elapsed float32) {
	s.avatar.Step(elapsed, s.controls.State(), s.opts.Params, s.opts.Board)
}

// Frame lays out the current state for a width x height target.
func (s *Session) Frame(width, height int) render.Frame {
	return render.Build(render.Scene{
		Board:          s.opts.Board,
		Keys:           s.keys,
		AvatarPosition: s.avatar.Position,
		AvatarRotation: s.avatar.Rotation,
		Meshes:         s.meshes,
		Lighting:       s.opts.Lighting,
	}, width, height)
}

// Bindings returns the key bindings the session listens to.
func (s *Session) Bindings() controls.Bindings {
	return s.controls.Bindings()
}

// Board returns the session's board.
func (s *Session) Board() board.Board {
	return s.opts.Board
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Seed:     s.seed,
		Keys:     s.keys,
		Position: s.avatar.Position,
		Velocity: s.avatar.Velocity(),
		Held:     s.controls.State(),
	}
}
