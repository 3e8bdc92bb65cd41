package spin

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config controls how the spinner's velocity decays.
type Config struct {
	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"` // spring angular frequency
	Damping   float64 `yaml:"damping"`   // 1 = critically damped
	Impulse   float64 `yaml:"impulse"`   // spread of a random impulse, radians per frame
}

// DefaultConfig returns a moderately fast, critically damped spring at 60 FPS.
func DefaultConfig() Config {
	return Config{
		FPS:       60,
		Frequency: 4.0,
		Damping:   1.0,
		Impulse:   0.3,
	}
}

// LoadConfig reads YAML from r on top of DefaultConfig.
// Keys missing from the document keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode spin config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the spring cannot run with.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d: must be positive", c.FPS)
	}
	if c.Frequency < 0 {
		return fmt.Errorf("invalid frequency %g: must not be negative", c.Frequency)
	}
	if c.Damping < 0 {
		return fmt.Errorf("invalid damping %g: must not be negative", c.Damping)
	}
	return nil
}
