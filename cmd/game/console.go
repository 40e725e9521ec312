package main

import (
	"errors"
	"flag"
	"fmt"

	"pbj/internal/board"
	"pbj/internal/commands"
	"pbj/internal/config"
	"pbj/internal/debug"
	"pbj/internal/game"
)

// registerCommands adds the in-game console commands.
func registerCommands(reg *commands.Registry, s *game.Session, d *debug.Debug) {
	regen := flag.NewFlagSet("regen", flag.ContinueOnError)
	seed := regen.Uint64("seed", 0, "level seed (0 = random based on time)")
	reg.Register("regen", "lay out a new level [-seed n]", regen, func([]string) error {
		err := s.Regenerate(*seed)
		*seed = 0
		return err
	})

	reg.Register("reset", "put the avatar back at the start", nil, func([]string) error {
		s.Reset()
		return nil
	})

	reg.Register("level", "print the seed and key cells", nil, func([]string) error {
		snap := s.Snapshot()
		fmt.Fprintf(reg.Out, "seed %d\n", snap.Seed)
		for _, k := range board.Keys {
			fmt.Fprintf(reg.Out, "%-6s %v\n", k, snap.Keys[k])
		}
		return nil
	})

	reg.Register("debug", "toggle and save an overlay: fps, mem or avatar", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: /debug fps|mem|avatar")
		}
		if err := d.Toggle(args[0]); err != nil {
			return err
		}
		return config.SavePrefs(config.PrefsPath, config.Prefs{Debug: d.Config()})
	})
}
