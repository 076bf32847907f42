package main

import (
	"math"

	"github.com/pthm-cable/cells/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
// The cell rules are fixed; only the environment and the founders vary.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Weather
			{Name: "hour_delay", Path: "weather.hour_delay", Min: 20, Max: 5000, Default: 1000},
			{Name: "temp_delay", Path: "weather.temp_delay", Min: 20, Max: 5000, Default: 500},
			// Founders
			{Name: "initial", Path: "population.initial", Min: 5, Max: 512, Default: 30},
			{Name: "initial_energy_max", Path: "population.initial_energy_max", Min: 10, Max: 400, Default: 100},
			{Name: "spawn_width", Path: "population.spawn_width", Min: 4, Max: 64, Default: 32},
			{Name: "spawn_height", Path: "population.spawn_height", Min: 4, Max: 64, Default: 16},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Min(math.Max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct and recomputes
// its derived values. Every parameter is an integer setting, so values are
// rounded after clamping.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	clamped := pv.Clamp(values)
	ints := make([]int, len(clamped))
	for i, v := range clamped {
		ints[i] = int(math.Round(v))
	}

	// Order must match Specs order
	cfg.Weather.HourDelay = ints[0]
	cfg.Weather.TempDelay = ints[1]
	cfg.Population.Initial = ints[2]
	cfg.Population.InitialEnergyMax = ints[3]
	cfg.Population.SpawnWidth = ints[4]
	cfg.Population.SpawnHeight = ints[5]

	return cfg.Apply()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Weather.HourDelay),
		float64(cfg.Weather.TempDelay),
		float64(cfg.Population.Initial),
		float64(cfg.Population.InitialEnergyMax),
		float64(cfg.Population.SpawnWidth),
		float64(cfg.Population.SpawnHeight),
	}
}
