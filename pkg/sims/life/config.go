package life

import "strconv"

// minPatternSide keeps the sized presets from touching themselves across the wrap.
const minPatternSide = 5

// Config controls the dimensions and seeding of sized patterns.
type Config struct {
	Rows int
	Cols int

	Seed    int64
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 32, Cols: 32, Seed: 42, Density: 0.3}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// ToMap renders the config back into the flag-style map accepted by FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"cols":    strconv.Itoa(c.Cols),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
