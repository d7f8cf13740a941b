package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pixlife/internal/life"
)

// Config carries every construction-time knob: board dimensions, the seed
// pair, the alive density, the color scheme, the starting pattern, and the
// presentation settings.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Seed     uint64  `yaml:"seed"`
	Stream   uint64  `yaml:"stream"`
	Density  float64 `yaml:"density"`
	Scheme   string  `yaml:"scheme"`
	Pattern  string  `yaml:"pattern"`
	Scale    int     `yaml:"scale"`
	TPS      int     `yaml:"tps"`
	Parallel bool    `yaml:"parallel"`
}

// Default returns the standard configuration: a 400x300 board seeded with
// the (1, 1) pair at 10% density, painted with the binary scheme.
func Default() Config {
	return Config{
		Width:   400,
		Height:  300,
		Seed:    1,
		Stream:  1,
		Density: 0.10,
		Scheme:  "binary",
		Pattern: "random",
		Scale:   3,
		TPS:     30,
	}
}

// Load layers the YAML file at path over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the engine cannot construct from.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("dimensions must be non-negative, got %dx%d", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	switch c.Scheme {
	case "binary", "heat", "neighbors":
	default:
		return errors.Errorf("unknown scheme %q", c.Scheme)
	}
	switch c.Pattern {
	case "random", "glider", "blinker":
	default:
		return errors.Errorf("unknown pattern %q", c.Pattern)
	}
	return nil
}

// NewGrid constructs the starting grid the config describes.
func (c Config) NewGrid() *life.Grid {
	switch c.Pattern {
	case "glider":
		g := life.New(c.Width, c.Height)
		g.AddGlider(1, 1)
		return g
	case "blinker":
		g := life.New(c.Width, c.Height)
		g.AddBlinker(c.Width/2-1, c.Height/2)
		return g
	default:
		return life.NewRandom(c.Width, c.Height, c.Seed, c.Stream, c.Density)
	}
}

// Advance steps the grid once using the configured execution mode.
func (c Config) Advance(g *life.Grid) {
	if c.Parallel {
		g.StepParallel()
		return
	}
	g.Step()
}
