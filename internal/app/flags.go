package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"torus-life/pkg/sims/life"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("app: invalid configuration")

// Config represents the command-line parameters for the application. Every
// field except ConfigFile can also come from a YAML file.
type Config struct {
	ConfigFile string `yaml:"-"`
	List       bool   `yaml:"-"`

	Pattern     string  `yaml:"pattern"`
	Input       string  `yaml:"input"`
	Generations int     `yaml:"generations"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	Trace       bool    `yaml:"trace"`
	GPS         int     `yaml:"gps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Pattern:     "default",
		Generations: 4,
		Rows:        d.Rows,
		Cols:        d.Cols,
		Seed:        d.Seed,
		Density:     d.Density,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML configuration file; explicit flags override it")
	fs.BoolVar(&c.List, "list", c.List, "list registered patterns and exit")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "registered pattern to start from")
	fs.StringVar(&c.Input, "input", c.Input, "pattern file to load; overrides -pattern")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to advance")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows for sized patterns")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns for sized patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the random pattern")
	fs.BoolVar(&c.Trace, "trace", c.Trace, "log every generation")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while tracing; 0 runs unpaced")
}

// LoadFile overlays the values present in the YAML file at path. Unknown
// keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("app: decode config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges that the flag parser cannot.
func (c *Config) Validate() error {
	switch {
	case c.Generations < 0:
		return fmt.Errorf("%w: generations=%d must not be negative", ErrInvalidConfig, c.Generations)
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: rows=%d cols=%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density=%g must be within [0,1]", ErrInvalidConfig, c.Density)
	case c.GPS < 0:
		return fmt.Errorf("%w: gps=%d must not be negative", ErrInvalidConfig, c.GPS)
	case c.Input == "" && c.Pattern == "":
		return fmt.Errorf("%w: one of pattern or input is required", ErrInvalidConfig)
	}
	return nil
}

// PatternConfig returns the sizing map handed to pattern factories.
func (c *Config) PatternConfig() map[string]string {
	return life.Config{Rows: c.Rows, Cols: c.Cols, Seed: c.Seed, Density: c.Density}.ToMap()
}

// Resolve parses args into a Config. Values from -config are applied first
// and flags given explicitly on the command line win over them.
func Resolve(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigFile != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.LoadFile(c.ConfigFile); err != nil {
			return nil, err
		}
		for name, v := range explicit {
			if err := fs.Set(name, v); err != nil {
				return nil, fmt.Errorf("app: reapply -%s: %w", name, err)
			}
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
