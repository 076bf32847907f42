package main

import (
	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/systems"
)

// WeatherParams holds the weather settings being previewed.
type WeatherParams struct {
	Hour      int
	Temp      int
	Direction int
	HourDelay int
	TempDelay int
}

// paramsFromConfig reads the weather settings of a config.
func paramsFromConfig(cfg *config.Config) WeatherParams {
	return WeatherParams{
		Hour:      cfg.Weather.InitialHour,
		Temp:      cfg.Weather.InitialTemp,
		Direction: cfg.Weather.InitialDirection,
		HourDelay: cfg.Weather.HourDelay,
		TempDelay: cfg.Weather.TempDelay,
	}
}

// Schedule is the weather sampled once per tick.
type Schedule struct {
	Hours []int
	Temps []int

	HourChanges int
	TempChanges int
}

// simulateSchedule runs the weather alone for the given number of ticks.
func simulateSchedule(p WeatherParams, ticks int) Schedule {
	w := systems.NewWeather(p.Hour, p.Temp, p.Direction, p.HourDelay, p.TempDelay)
	s := Schedule{
		Hours: make([]int, ticks),
		Temps: make([]int, ticks),
	}
	for i := 0; i < ticks; i++ {
		change := systems.AdvanceWeather(&w)
		if change.Hour {
			s.HourChanges++
		}
		if change.Temp {
			s.TempChanges++
		}
		s.Hours[i] = w.Hour
		s.Temps[i] = w.Temp
	}
	return s
}

// gainRows returns the photosynthesis gain for every grid row at an hour.
func gainRows(hour int) []int {
	rows := make([]int, systems.GridSize)
	for y := range rows {
		rows[y] = systems.PhotosynthesisGain(y, hour)
	}
	return rows
}

// GainSummary describes a gain profile.
type GainSummary struct {
	Min, Max     int
	Mean         float64
	NegativeRows int
}

func summarizeGain(rows []int) GainSummary {
	if len(rows) == 0 {
		return GainSummary{}
	}
	s := GainSummary{Min: rows[0], Max: rows[0]}
	total := 0
	for _, g := range rows {
		total += g
		if g < s.Min {
			s.Min = g
		}
		if g > s.Max {
			s.Max = g
		}
		if g < 0 {
			s.NegativeRows++
		}
	}
	s.Mean = float64(total) / float64(len(rows))
	return s
}
