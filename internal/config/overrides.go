package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Overrides holds command-line values that take precedence over the file.
// Nil fields are left alone.
type Overrides struct {
	Cells         *int
	Pitch         *float64
	InitialCenter *int
	Sensitivity   *float64
	Fullscreen    *bool
	Debug         bool
}

// Apply writes the set overrides into c and re-validates it.
func (o Overrides) Apply(c *Config) error {
	if o.Cells != nil {
		c.Carousel.Cells = *o.Cells
	}
	if o.Pitch != nil {
		c.Carousel.Pitch = *o.Pitch
	}
	if o.InitialCenter != nil {
		c.Carousel.InitialCenter = *o.InitialCenter
	}
	if o.Sensitivity != nil {
		c.Carousel.Sensitivity = *o.Sensitivity
	}
	if o.Fullscreen != nil {
		c.UI.Fullscreen = *o.Fullscreen
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
	return c.Validate()
}

// SlogLevel parses the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", c.Log.Level)
}
