// Package config loads render settings for the command line tool from TOML.
//
// A minimal file looks like:
//
//	scene = "hex-sphere"
//	width = 400
//	height = 400
//
//	[device]
//	mode = "cpu"
//	limit = 4
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
	"github.com/pelletier/go-toml/v2"
)

// Config contains render settings
type Config struct {
	Scene   string        `toml:"scene"`  // Builtin scene id
	Width   int           `toml:"width"`  // Image width
	Height  int           `toml:"height"` // Image height
	Output  string        `toml:"output"` // Output root directory
	Device  device.Config `toml:"device"`
	Tracer  TracerConfig  `toml:"tracer"`
	Preview PreviewConfig `toml:"preview"`
}

// TracerConfig contains tracer settings
type TracerConfig struct {
	Antialiasing int `toml:"antialiasing"` // Samples per pixel along each axis
}

// PreviewConfig controls the scaled copy written next to the render
type PreviewConfig struct {
	Scale float64 `toml:"scale"` // Preview scale factor, 1 disables the preview
}

// Default returns sensible default values
func Default() Config {
	return Config{
		Scene:   "hex-sphere",
		Width:   400,
		Height:  400,
		Output:  "output",
		Device:  device.DefaultConfig(),
		Tracer:  TracerConfig{Antialiasing: 1},
		Preview: PreviewConfig{Scale: 1},
	}
}

// Load reads a TOML file over the defaults. Keys the file does not set
// keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads TOML from r over the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: config: %w", core.ErrInvalidArgument, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes the configuration as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: config: scene is required", core.ErrInvalidArgument)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: config: image size must be positive, got %dx%d", core.ErrInvalidArgument, c.Width, c.Height)
	}
	if c.Device.Mode != device.CPU && c.Device.Mode != device.GPU {
		return fmt.Errorf("%w: config: unknown device mode %q", core.ErrInvalidArgument, c.Device.Mode)
	}
	if c.Tracer.Antialiasing < 1 {
		return fmt.Errorf("%w: config: antialiasing must be at least 1, got %d", core.ErrInvalidArgument, c.Tracer.Antialiasing)
	}
	if c.Preview.Scale <= 0 {
		return fmt.Errorf("%w: config: preview scale must be positive, got %g", core.ErrInvalidArgument, c.Preview.Scale)
	}
	return nil
}
