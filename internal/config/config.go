// Package config loads the monres configuration file. Everything in it
// is a startup-time constant: the resolver never feeds runtime display
// state back into configuration.
package config

import (
	"fmt"

	"github.com/greyfell/monres"
)

// Config is the effective monres configuration.
type Config struct {
	Window   WindowSettings `yaml:"window"`
	Baseline Baseline       `yaml:"baseline"`
	Fallback Fallback       `yaml:"fallback"`
	Logging  Logging        `yaml:"logging"`
}

// WindowSettings configures the assembled window.
type WindowSettings struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Baseline is the reference resolution and the base sizes defined
// against it.
type Baseline struct {
	ReferenceWidth  int     `yaml:"reference_width"`
	ReferenceHeight int     `yaml:"reference_height"`
	TileSize        float64 `yaml:"tile_size"`
	Margin          float64 `yaml:"margin"`
}

// Fallback is the resolution substituted when every probe fails.
type Fallback struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Logging configures the diagnostic output.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() *Config {
	baseline := monres.DefaultBaseline()
	fallback := monres.DefaultFallbackResolution()
	return &Config{
		Window: WindowSettings{
			Title:      "monres",
			Fullscreen: true,
		},
		Baseline: Baseline{
			ReferenceWidth:  baseline.ReferenceWidth,
			ReferenceHeight: baseline.ReferenceHeight,
			TileSize:        baseline.TileSize,
			Margin:          baseline.Margin,
		},
		Fallback: Fallback{
			Width:  fallback.Width,
			Height: fallback.Height,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks invariants that would otherwise surface as assembler
// panics at resolve time.
func (c *Config) Validate() error {
	if c.Baseline.ReferenceWidth <= 0 || c.Baseline.ReferenceHeight <= 0 {
		return fmt.Errorf("baseline reference must be positive, got %dx%d",
			c.Baseline.ReferenceWidth, c.Baseline.ReferenceHeight)
	}
	if c.Baseline.TileSize <= 0 {
		return fmt.Errorf("baseline tile_size must be positive, got %v", c.Baseline.TileSize)
	}
	if c.Baseline.Margin < 0 {
		return fmt.Errorf("baseline margin must not be negative, got %v", c.Baseline.Margin)
	}
	if c.Fallback.Width <= 0 || c.Fallback.Height <= 0 {
		return fmt.Errorf("fallback resolution must be positive, got %dx%d",
			c.Fallback.Width, c.Fallback.Height)
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// ScalingBaseline converts the configured baseline into the resolver's
// type.
func (c *Config) ScalingBaseline() monres.ScalingBaseline {
	return monres.ScalingBaseline{
		ReferenceWidth:  c.Baseline.ReferenceWidth,
		ReferenceHeight: c.Baseline.ReferenceHeight,
		TileSize:        c.Baseline.TileSize,
		Margin:          c.Baseline.Margin,
	}
}

// FallbackResolution converts the configured fallback into the
// resolver's type.
func (c *Config) FallbackResolution() monres.Resolution {
	return monres.Resolution{Width: c.Fallback.Width, Height: c.Fallback.Height}
}

// ResolverOptions builds the resolver options expressed by this config.
func (c *Config) ResolverOptions() []monres.Option {
	return []monres.Option{
		monres.WithTitle(c.Window.Title),
		monres.WithFullscreen(c.Window.Fullscreen),
		monres.WithFallback(c.FallbackResolution()),
	}
}
