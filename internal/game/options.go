package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"pbj/internal/board"
	"pbj/internal/config"
	"pbj/internal/controls"
	"pbj/internal/motion"
	"pbj/internal/render"
)

// Options configures a Session.
type Options struct {
	Board    board.Board
	Params   motion.Params
	Start    mgl32.Vec3
	Bindings controls.Bindings
	Lighting render.Lighting
	Seed     uint64 // 0 picks one from the clock
}

// OptionsFromConfig converts the loaded configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	b, err := board.New(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return Options{}, err
	}
	bindings, err := controls.ParseBindings(cfg.Controls.Map())
	if err != nil {
		return Options{}, err
	}
	l := cfg.Lighting
	return Options{
		Board: b,
		Params: motion.Params{
			Acceleration: cfg.Motion.Acceleration,
			MaxVelocity:  cfg.Motion.MaxVelocity,
		},
		Start:    mgl32.Vec3{cfg.Motion.Start[0], cfg.Motion.Start[1], 0},
		Bindings: bindings,
		Lighting: render.Lighting{
			SunDirection: l.SunDirection,
			SunColor:     l.SunColor,
			SkyDirection: l.SkyDirection,
			SkyColor:     l.SkyColor,
		}.Normalized(),
		Seed: cfg.Seed,
	}, nil
}
