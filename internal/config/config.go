package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/loopcarousel/internal/carousel"
	"github.com/depeter/loopcarousel/internal/viewport"
)

type Config struct {
	Carousel  CarouselConfig  `toml:"carousel"`
	Reference ReferenceConfig `toml:"reference"`
	UI        UIConfig        `toml:"ui"`
	Terminal  TerminalConfig  `toml:"terminal"`
	Keybinds  KeybindConfig   `toml:"keybinds"`
	Log       LogConfig       `toml:"log"`
}

type CarouselConfig struct {
	Cells         int     `toml:"cells"`
	Pitch         float64 `toml:"pitch"`
	InitialCenter int     `toml:"initial_center"`
	Sensitivity   float64 `toml:"sensitivity"`
}

// ReferenceConfig is the design resolution used to place the side markers.
type ReferenceConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type TerminalConfig struct {
	// ColumnsPerCell is how many terminal columns one pitch spans.
	ColumnsPerCell int `toml:"columns_per_cell"`
}

type KeybindConfig struct {
	StepLeft   string `toml:"step_left"`
	StepRight  string `toml:"step_right"`
	Reset      string `toml:"reset"`
	Fullscreen string `toml:"fullscreen"`
	Quit       string `toml:"quit"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	p := carousel.DefaultParams()
	return &Config{
		Carousel: CarouselConfig{
			Cells:         p.CellCount,
			Pitch:         p.Pitch,
			InitialCenter: p.InitialCenter,
			Sensitivity:   p.Sensitivity,
		},
		Reference: ReferenceConfig{
			Width:  viewport.DefaultReference.Width,
			Height: viewport.DefaultReference.Height,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
		},
		Terminal: TerminalConfig{
			ColumnsPerCell: 24,
		},
		Keybinds: KeybindConfig{
			StepLeft:   "Left",
			StepRight:  "Right",
			Reset:      "R",
			Fullscreen: "F",
			Quit:       "Q",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Params returns the carousel setup described by the config.
func (c *Config) Params() carousel.Params {
	return carousel.Params{
		CellCount:     c.Carousel.Cells,
		Pitch:         c.Carousel.Pitch,
		InitialCenter: c.Carousel.InitialCenter,
		Sensitivity:   c.Carousel.Sensitivity,
	}
}

func (c *Config) ReferenceSize() viewport.Reference {
	return viewport.Reference{Width: c.Reference.Width, Height: c.Reference.Height}
}

// Validate checks the carousel params and the sizes the frontends rely on.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Reference.Width <= 0 || c.Reference.Height <= 0 {
		return fmt.Errorf("reference size %vx%v must be positive", c.Reference.Width, c.Reference.Height)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.UI.Width, c.UI.Height)
	}
	if c.Terminal.ColumnsPerCell < 3 {
		return fmt.Errorf("terminal columns_per_cell %d must be at least 3", c.Terminal.ColumnsPerCell)
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "loopcarousel"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path, starting from defaults so
// that a partial file only overrides the keys it sets.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
