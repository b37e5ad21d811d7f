// Package config loads netpulse settings from TOML, the environment and
// command-line overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator"

	"github.com/olivierh59500/netpulse-go/internal/colorutil"
	"github.com/olivierh59500/netpulse-go/internal/engine"
	"github.com/olivierh59500/netpulse-go/internal/network"
)

// Config holds netpulse configuration.
type Config struct {
	Engine EngineConfig   `toml:"engine"`
	Window WindowConfig   `toml:"window"`
	Render RenderConfig   `toml:"render"`
	Tuning network.Tuning `toml:"tuning"`
	Log    LogConfig      `toml:"log"`
}

// EngineConfig is the external configuration surface of the background.
type EngineConfig struct {
	GridSize   float64 `toml:"grid_size" validate:"gte=1"`
	NodeColor  string  `toml:"node_color" validate:"required"`
	Intensity  float64 `toml:"intensity" validate:"gte=0,lte=1"`
	Animate    bool    `toml:"animate"`
	Seed       int64   `toml:"seed"` // 0 picks a new network every run
	Background string  `toml:"background" validate:"omitempty,csscolor"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int    `toml:"width" validate:"gt=0"`
	Height int    `toml:"height" validate:"gt=0"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps" validate:"gte=0,lte=240"`
}

// RenderConfig controls headless rendering.
type RenderConfig struct {
	Width       int    `toml:"width" validate:"gte=0"`
	Height      int    `toml:"height" validate:"gte=0"`
	Frames      int    `toml:"frames" validate:"gte=1,lte=10000"`
	FPS         int    `toml:"fps" validate:"gte=1,lte=120"`
	OutDir      string `toml:"out_dir"`
	GIF         string `toml:"gif"`
	Concurrency int    `toml:"concurrency" validate:"gte=1,lte=64"`
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			GridSize:   engine.DefaultGridSize,
			NodeColor:  engine.DefaultColor,
			Intensity:  1,
			Animate:    true,
			Background: "#0a0a0f",
		},
		Window: WindowConfig{Width: 1280, Height: 720, Title: "netpulse", TPS: 60},
		Render: RenderConfig{Width: 800, Height: 450, Frames: 120, FPS: 30, OutDir: "frames", Concurrency: 4},
		Tuning: network.DefaultTuning(),
	}
}

// ConfigDir returns the netpulse config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "netpulse")
}

// DefaultPath is the config file used when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config at path, or the default path when path is empty,
// applies environment overrides and validates the result. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
		_, ok := colorutil.Parse(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks ranges and formats.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// BackgroundColor returns the parsed background, transparent when unset.
func (c *Config) BackgroundColor() color.NRGBA {
	bg, _ := colorutil.Parse(c.Engine.Background)
	return bg
}

// EngineOptions converts the config into simulation options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		GridSize:  c.Engine.GridSize,
		Color:     c.Engine.NodeColor,
		Intensity: c.Engine.Intensity,
		Animate:   c.Engine.Animate,
		Seed:      c.Engine.Seed,
		Tuning:    c.Tuning,
	}
}
