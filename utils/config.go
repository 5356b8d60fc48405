package utils

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Spores         int           `json:"spores"`
	Console        bool          `json:"console"`
	Plain          bool          `json:"plain"`
	StepOnKey      bool          `json:"step_on_key"`
	FrameRate      time.Duration `json:"frame_rate"`
	Seed           int64         `json:"seed"`
	Workers        int           `json:"workers"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	MaxGenerations int           `json:"max_generations"`
	Scale          int           `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:     75,
		Height:    50,
		Spores:    500,
		FrameRate: 100 * time.Millisecond,
		Scale:     10,
	}
}

// LoadConfig reads a JSON file over the defaults. Keys the file omits keep
// their default values; unknown keys are rejected so typos do not pass silently.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to open %s", filename)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to decode %s", filename)
	}
	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Spores, "spores", c.Spores, "number of random spores seeded at startup")
	fs.BoolVar(&c.Console, "console", c.Console, "render in the terminal instead of a window")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "stream plain text frames to stdout")
	fs.BoolVar(&c.StepOnKey, "step", c.StepOnKey, "advance one generation per key press")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step workers (0 uses every CPU)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle retired generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
}

// ParseArgs builds a Config from command-line arguments. A -config file is
// loaded first and flags given explicitly override its values.
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	var path string
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", "", "")
	scratch := DefaultConfig()
	scratch.Bind(probe)
	if err := probe.Parse(args); err != nil {
		// let the real pass report it with usage
		path = ""
	}

	config := DefaultConfig()
	if path != "" {
		var err error
		if config, err = LoadConfig(path); err != nil {
			return config, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.String("config", path, "JSON configuration file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] invalid arguments")
	}
	return config, nil
}

// Validate checks the configuration before a board is built
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] board %dx%d", c.Width, c.Height)
	case c.Spores < 0:
		return errors.Errorf("[Validate] spores must not be negative, got %d", c.Spores)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.Workers < 0:
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	case c.Scale < 1:
		return errors.Errorf("[Validate] scale must be at least 1, got %d", c.Scale)
	}
	return nil
}
