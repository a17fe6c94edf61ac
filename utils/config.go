package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	CellSize       int           `json:"cell_size"`
	Pattern        string        `json:"pattern"`
	Seed           int64         `json:"seed"`
	RandomDensity  float64       `json:"random_density"`
	MaxGenerations int           `json:"max_generations"`
	StopOnStable   bool          `json:"stop_on_stable"`
	HistoryDepth   int           `json:"history_depth"`
	Workers        int           `json:"workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         60,
		FrameRate:      200 * time.Millisecond,
		CellSize:       10,
		Pattern:        "", // Pick one at random
		Seed:           0,  // Seeded from the clock
		RandomDensity:  0.5,
		MaxGenerations: 0, // Run until stopped
		StopOnStable:   false,
		HistoryDepth:   2,
		Workers:        1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind registers command line overrides for every field on fs
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.DurationVar(&c.FrameRate, "delay", c.FrameRate, "delay between generations")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels (GUI only)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern, empty picks one at random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 uses the clock")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "alive probability for the random pattern")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.BoolVar(&c.StopOnStable, "stop-on-stable", c.StopOnStable, "stop once the board repeats a recent generation")
	fs.IntVar(&c.HistoryDepth, "history", c.HistoryDepth, "generations kept for -stop-on-stable")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
}

// Validate checks that the config can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate: %v", c.FrameRate)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive, got %d", c.CellSize)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations: %d", c.MaxGenerations)
	case c.StopOnStable && c.HistoryDepth <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history depth must be positive, got %d", c.HistoryDepth)
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be positive, got %d", c.Workers)
	}
	return nil
}
