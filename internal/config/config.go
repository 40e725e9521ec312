// Package config loads game settings from YAML. Built-in defaults are embedded so the game
// runs without any file on disk.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is checked when no explicit path is given, relative to the working directory.
const LocalPath = "config/game.yaml"

//go:embed default.yaml
var defaultYAML []byte

// Window configures the raylib window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FPS        int    `yaml:"fps"`
	Fullscreen bool   `yaml:"fullscreen"`
	MSAA       bool   `yaml:"msaa"`
}

// Board is the board size in cells.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Motion tunes the avatar integrator. Start is the avatar's initial cell.
type Motion struct {
	Acceleration float32    `yaml:"acceleration"`
	MaxVelocity  float32    `yaml:"max_velocity"`
	Start        [2]float32 `yaml:"start"`
}

// Controls maps each direction to a key name.
type Controls struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Map returns the bindings keyed by direction name.
func (c Controls) Map() map[string]string {
	return map[string]string{"up": c.Up, "down": c.Down, "left": c.Left, "right": c.Right}
}

// Assets locates the files the game loads at startup. Font is optional: a file path or a
// name looked up under FontsDir; empty keeps raylib's built-in font.
type Assets struct {
	Meshes   string `yaml:"meshes"`
	Font     string `yaml:"font"`
	FontsDir string `yaml:"fonts_dir"`
}

// Lighting overrides the shader's sun and sky terms.
type Lighting struct {
	SunDirection [3]float32 `yaml:"sun_direction"`
	SunColor     [3]float32 `yaml:"sun_color"`
	SkyDirection [3]float32 `yaml:"sky_direction"`
	SkyColor     [3]float32 `yaml:"sky_color"`
}

// Debug toggles overlays. All off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowAvatar   bool `yaml:"show_avatar"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the full game configuration.
type Config struct {
	Window   Window   `yaml:"window"`
	Board    Board    `yaml:"board"`
	Motion   Motion   `yaml:"motion"`
	Controls Controls `yaml:"controls"`
	Assets   Assets   `yaml:"assets"`
	Seed     uint64   `yaml:"seed"`
	Lighting Lighting `yaml:"lighting"`
	Debug    Debug    `yaml:"debug"`
	Log      Log      `yaml:"log"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads configuration. With a non-empty path that file must exist and parse. With an
// empty path LocalPath is used when present, otherwise the embedded defaults. Values missing
// from a file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		data, err := os.ReadFile(filepath.Clean(LocalPath))
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", LocalPath, err)
		}
		return decode(cfg, LocalPath, data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return decode(cfg, path, data)
}

func decode(cfg Config, path string, data []byte) (Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the game cannot start with.
func (c Config) Validate() error {
	if c.Board.Width < 3 || c.Board.Height < 3 {
		return fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Motion.Acceleration <= 0 {
		return fmt.Errorf("motion.acceleration must be positive, got %v", c.Motion.Acceleration)
	}
	if c.Motion.MaxVelocity <= 0 {
		return fmt.Errorf("motion.max_velocity must be positive, got %v", c.Motion.MaxVelocity)
	}
	if x, y := c.Motion.Start[0], c.Motion.Start[1]; x < 1 || x > float32(c.Board.Width-2) || y < 1 || y > float32(c.Board.Height-2) {
		return fmt.Errorf("motion.start (%v, %v) must be inside the board's inner ring [1, %d] x [1, %d]",
			x, y, c.Board.Width-2, c.Board.Height-2)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("window.fps must not be negative, got %d", c.Window.FPS)
	}
	if c.Assets.Meshes == "" {
		return errors.New("assets.meshes is empty")
	}
	return nil
}
