// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Weather    WeatherConfig    `yaml:"weather"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	Scale     int `yaml:"scale"` // pixels per grid square
}

// WeatherConfig holds the day and temperature cadences.
type WeatherConfig struct {
	HourDelay        int `yaml:"hour_delay"` // ticks between hour changes
	TempDelay        int `yaml:"temp_delay"` // ticks between temperature steps
	InitialHour      int `yaml:"initial_hour"`
	InitialTemp      int `yaml:"initial_temp"`
	InitialDirection int `yaml:"initial_direction"` // +1 warming, -1 cooling
}

// PopulationConfig holds population sizing and the founder spawn region.
type PopulationConfig struct {
	Initial          int `yaml:"initial"`
	Max              int `yaml:"max"`
	SpawnWidth       int `yaml:"spawn_width"`  // founders spawn with x in [0, spawn_width)
	SpawnHeight      int `yaml:"spawn_height"` // founders spawn with y in [0, spawn_height)
	InitialEnergyMax int `yaml:"initial_energy_max"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpawnSlots  int     // SpawnWidth * SpawnHeight
	Founders    int     // Initial clamped to the spawn slots and Max
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	StatsWindow int32   // Telemetry.StatsWindow as int32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	var errs []error
	if c.Weather.HourDelay <= 0 {
		errs = append(errs, fmt.Errorf("weather.hour_delay must be positive, got %d", c.Weather.HourDelay))
	}
	if c.Weather.TempDelay <= 0 {
		errs = append(errs, fmt.Errorf("weather.temp_delay must be positive, got %d", c.Weather.TempDelay))
	}
	if c.Weather.InitialHour < 0 || c.Weather.InitialHour >= 25 {
		errs = append(errs, fmt.Errorf("weather.initial_hour must be in [0, 25), got %d", c.Weather.InitialHour))
	}
	if c.Weather.InitialTemp < -10 || c.Weather.InitialTemp > 10 {
		errs = append(errs, fmt.Errorf("weather.initial_temp must be in [-10, 10], got %d", c.Weather.InitialTemp))
	}
	if c.Weather.InitialDirection != 1 && c.Weather.InitialDirection != -1 {
		errs = append(errs, fmt.Errorf("weather.initial_direction must be 1 or -1, got %d", c.Weather.InitialDirection))
	}
	if c.Population.Max <= 0 {
		errs = append(errs, fmt.Errorf("population.max must be positive, got %d", c.Population.Max))
	}
	if c.Population.Initial < 0 {
		errs = append(errs, fmt.Errorf("population.initial must not be negative, got %d", c.Population.Initial))
	}
	if c.Population.SpawnWidth <= 0 || c.Population.SpawnWidth > 64 ||
		c.Population.SpawnHeight <= 0 || c.Population.SpawnHeight > 64 {
		errs = append(errs, fmt.Errorf("population spawn region %dx%d must fit the 64x64 grid",
			c.Population.SpawnWidth, c.Population.SpawnHeight))
	}
	if c.Population.InitialEnergyMax <= 0 {
		errs = append(errs, fmt.Errorf("population.initial_energy_max must be positive, got %d", c.Population.InitialEnergyMax))
	}
	if c.Telemetry.StatsWindow <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must be positive, got %d", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpawnSlots = c.Population.SpawnWidth * c.Population.SpawnHeight
	c.Derived.Founders = min(c.Population.Initial, c.Derived.SpawnSlots, c.Population.Max)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.StatsWindow = int32(c.Telemetry.StatsWindow)

	if c.Screen.Scale <= 0 {
		c.Screen.Scale = 1
	}
}

// Apply re-validates the config and recomputes derived values. Call it after
// changing fields of a loaded config in code.
func (c *Config) Apply() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.computeDerived()
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
