package main

import (
	"github.com/spf13/cobra"

	"pbj/internal/commands"
	"pbj/internal/config"
	"pbj/internal/debug"
	"pbj/internal/fonts"
	"pbj/internal/game"
	"pbj/internal/graphics"
	"pbj/internal/logger"
	"pbj/internal/meshes"
	"pbj/internal/render"
	"pbj/internal/terminal"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Prefix: "pbj"})
	if err != nil {
		return err
	}
	defer log.Close()

	catalog, err := meshes.Open(cfg.Assets.Meshes)
	if err != nil {
		return err
	}
	if n := catalog.Trailing(); n > 0 {
		log.Warn("mesh blob has trailing data", "path", cfg.Assets.Meshes, "bytes", n)
	}
	resolved, err := render.ResolveMeshes(catalog)
	if err != nil {
		return err
	}
	log.Info("meshes loaded", "path", cfg.Assets.Meshes, "meshes", len(catalog.Names()), "vertices", catalog.Len())

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	session, err := game.New(opts, resolved, log.Logger)
	if err != nil {
		return err
	}
	keyboard, err := graphics.NewKeyboard(session.Bindings())
	if err != nil {
		return err
	}

	trace := graphics.NewTraceLog(log.Logger)
	graphics.OpenWindow(cfg.Window)
	defer graphics.CloseWindow()

	pipeline, err := graphics.NewPipeline(graphics.DefaultProgram(), catalog, trace)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	text := loadText(cfg.Assets, log)
	defer text.Unload()

	prefs := config.LoadPrefs(config.PrefsPath, config.Prefs{Debug: cfg.Debug})
	a := newApp(session, pipeline, keyboard, log, debug.New(prefs.Debug))
	a.term.SetText(text)
	a.debug.SetText(text)
	log.Info("session started", "session", session.ID, "board", session.Board())
	graphics.Run(a)
	log.Info("session ended", "session", session.ID)
	return nil
}

// loadText loads the configured overlay font. Failures are logged and fall back to raylib's
// built-in font.
func loadText(assets config.Assets, log *logger.Logger) graphics.Text {
	if assets.Font == "" {
		return graphics.Text{}
	}
	path, err := fonts.Find(assets.FontsDir, assets.Font)
	if err == nil {
		var text graphics.Text
		if text, err = graphics.LoadText(path); err == nil {
			log.Debug("font loaded", "path", path)
			return text
		}
	}
	log.Warn("using built-in font", "font", assets.Font, "err", err)
	return graphics.Text{}
}

// app glues the session to the window: console first, then movement keys, then drawing.
type app struct {
	session  *game.Session
	pipeline *graphics.Pipeline
	keyboard *graphics.Keyboard
	term     *terminal.Terminal
	debug    *debug.Debug
}

func newApp(s *game.Session, p *graphics.Pipeline, k *graphics.Keyboard, log *logger.Logger, d *debug.Debug) *app {
	a := &app{session: s, pipeline: p, keyboard: k, debug: d}
	reg := commands.NewRegistry(log.Writer())
	registerCommands(reg, s, d)
	a.term = terminal.New(log, reg)
	a.term.OnToggle = func(open bool) {
		if open {
			s.ReleaseControls()
		}
	}
	return a
}

func (a *app) Poll() {
	a.term.Update()
	if a.term.IsOpen() {
		return
	}
	a.keyboard.Poll(a.session.HandleEvent)
}

func (a *app) Update(elapsed float32) {
	a.session.Update(elapsed)
}

func (a *app) Draw(width, height int) {
	a.pipeline.Draw(a.session.Frame(width, height))
	a.term.Draw()
	a.debug.Draw(a.session.Snapshot())
}
