package copycat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/copycat/temperature"
)

// Config holds every run knob spec.md §6 lists, each with the default
// §6 specifies. Zero-value Config is invalid (formula name is empty,
// and New fills it in); callers should always start from DefaultConfig
// or NewConfig.
type Config struct {
	Seed int64 `yaml:"seed"`

	MaxSteps  int `yaml:"max_steps"`
	ClampTime int `yaml:"clamp_time"`

	SlipnetUpdatePeriod     int `yaml:"slipnet_update_period"`
	TemperatureUpdatePeriod int `yaml:"temperature_update_period"`
	CoderackUpdatePeriod    int `yaml:"coderack_update_period"`

	TemperatureFormula string `yaml:"temperature_formula"`
}

// DefaultConfig returns spec.md §6's defaults: max_steps≈5000,
// clamp_time=30, every period=1 (update every step, the original's
// behavior absent an explicit source specifying otherwise), and the
// "inverse" formula.
func DefaultConfig() Config {
	return Config{
		Seed:                    0,
		MaxSteps:                5000,
		ClampTime:               30,
		SlipnetUpdatePeriod:     1,
		TemperatureUpdatePeriod: 1,
		CoderackUpdatePeriod:    1,
		TemperatureFormula:      temperature.DefaultFormula,
	}
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithSeed sets the run's PRNG seed.
func WithSeed(seed int64) ConfigOption { return func(c *Config) { c.Seed = seed } }

// WithMaxSteps overrides the per-run step budget.
func WithMaxSteps(n int) ConfigOption { return func(c *Config) { c.MaxSteps = n } }

// WithClampTime overrides the temperature clamp duration.
func WithClampTime(n int) ConfigOption { return func(c *Config) { c.ClampTime = n } }

// WithSlipnetUpdatePeriod overrides how many steps elapse between
// Slipnet.Update calls.
func WithSlipnetUpdatePeriod(n int) ConfigOption {
	return func(c *Config) { c.SlipnetUpdatePeriod = n }
}

// WithTemperatureUpdatePeriod overrides how many steps elapse between
// Temperature.Update calls.
func WithTemperatureUpdatePeriod(n int) ConfigOption {
	return func(c *Config) { c.TemperatureUpdatePeriod = n }
}

// WithCoderackUpdatePeriod overrides how many steps elapse between
// Coderack.AgeTick calls (urgency aging of long-queued codelets).
func WithCoderackUpdatePeriod(n int) ConfigOption {
	return func(c *Config) { c.CoderackUpdatePeriod = n }
}

// WithTemperatureFormula overrides the named probability-adjustment
// formula (see temperature.Formulas for the registry).
func WithTemperatureFormula(name string) ConfigOption {
	return func(c *Config) { c.TemperatureFormula = name }
}

// NewConfig builds a Config from DefaultConfig plus any overrides.
func NewConfig(opts ...ConfigOption) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LoadConfig reads a YAML file at path into a Config seeded from
// DefaultConfig, so a file that only overrides a subset of fields still
// yields a fully-populated Config.
//
// Grounded on spec.md §6's "configuration knobs (all optional, sensible
// defaults)"; gopkg.in/yaml.v3 is already an indirect teacher dependency.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("copycat: load config: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("copycat: parse config: %w", err)
	}
	return c, nil
}
