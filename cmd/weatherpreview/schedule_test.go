package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/systems"
)

func defaultParams() WeatherParams {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	return paramsFromConfig(cfg)
}

func TestSimulateScheduleMatchesDefaults(t *testing.T) {
	s := simulateSchedule(defaultParams(), 3000)
	require.Len(t, s.Hours, 3000)

	assert.Equal(t, 3, s.HourChanges)
	assert.Equal(t, 6, s.TempChanges)
	assert.Equal(t, 0, s.Hours[998])
	assert.Equal(t, 1, s.Hours[999])
	assert.Equal(t, 1, s.Temps[499])
	assert.Equal(t, 6, s.Temps[2999])
}

func TestScheduleTempStaysInRange(t *testing.T) {
	p := defaultParams()
	p.TempDelay = 20
	s := simulateSchedule(p, 5000)
	for _, temp := range s.Temps {
		assert.GreaterOrEqual(t, temp, systems.MinTemp)
		assert.LessOrEqual(t, temp, systems.MaxTemp)
	}
}

func TestGainRows(t *testing.T) {
	rows := gainRows(0)
	require.Len(t, rows, systems.GridSize)
	assert.Equal(t, 0, rows[0])
	assert.Equal(t, 1, rows[19])
	assert.Equal(t, 0, rows[20])
	assert.Equal(t, -1, rows[21])

	sum := summarizeGain(rows)
	assert.Equal(t, -9, sum.Min)
	assert.Equal(t, 9, sum.Max)
	// rows 30, 40, 50 and 60 wrap back to zero
	assert.Equal(t, 39, sum.NegativeRows)
}

func TestHourAtFallsBackToInitial(t *testing.T) {
	p := defaultParams()
	p.Hour = 7
	assert.Equal(t, 7, hourAt(p, Schedule{}, 0))
	assert.Equal(t, 7, hourAt(p, simulateSchedule(p, 10), 10))
}

func TestWeatherYAML(t *testing.T) {
	lines := splitLines(weatherYAML(defaultParams()))
	require.Len(t, lines, 6)
	assert.Equal(t, "weather:", lines[0])
	assert.Equal(t, "  hour_delay: 1000", lines[1])
	assert.Equal(t, "  initial_direction: 1", lines[5])
}
