package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/cells/components"
)

func TestAdvanceWeather_TemperaturePingPong(t *testing.T) {
	w := NewWeather(0, 9, 1, 1_000_000, 1)

	change := AdvanceWeather(&w)
	assert.True(t, change.Temp)
	assert.Equal(t, 10, w.Temp)
	assert.Equal(t, -1, w.Direction)

	AdvanceWeather(&w)
	assert.Equal(t, 9, w.Temp)
	assert.Equal(t, -1, w.Direction)
}

func TestAdvanceWeather_TemperatureStaysInRange(t *testing.T) {
	w := NewWeather(0, 0, 1, 1_000_000, 1)

	sawMax, sawMin := false, false
	for i := 0; i < 200; i++ {
		AdvanceWeather(&w)
		assert.GreaterOrEqual(t, w.Temp, MinTemp)
		assert.LessOrEqual(t, w.Temp, MaxTemp)
		sawMax = sawMax || w.Temp == MaxTemp
		sawMin = sawMin || w.Temp == MinTemp
	}
	assert.True(t, sawMax && sawMin, "temperature should reflect off both bounds")
}

func TestAdvanceWeather_HourWraps(t *testing.T) {
	w := NewWeather(24, 0, 1, 1, 1_000_000)

	change := AdvanceWeather(&w)
	assert.True(t, change.Hour)
	assert.False(t, change.Temp)
	assert.Equal(t, 0, w.Hour)
}

func TestAdvanceWeather_Cadence(t *testing.T) {
	w := NewWeather(0, 0, 1, 1000, 500)

	var hours, temps int
	for i := 1; i <= 4000; i++ {
		change := AdvanceWeather(&w)
		if change.Hour {
			hours++
			assert.Zero(t, i%1000, "hour changed on tick %d", i)
		}
		if change.Temp {
			temps++
			assert.Zero(t, i%500, "temperature changed on tick %d", i)
		}
	}

	assert.Equal(t, 4, hours)
	assert.Equal(t, 8, temps)
	assert.Equal(t, 4, w.Hour)
}

func TestAdvanceWeather_CycleWraps(t *testing.T) {
	w := components.Weather{Cycle: CycleWrap - 1, HourDelay: 1000, TempDelay: 500, Direction: 1}

	change := AdvanceWeather(&w)
	assert.True(t, change.Hour, "the wrap tick is still evaluated before resetting")
	assert.True(t, change.Temp)
	assert.Equal(t, 0, w.Cycle)

	AdvanceWeather(&w)
	assert.Equal(t, 1, w.Cycle)
}

func TestAdvanceWeather_FirstTickWithLargeDelays(t *testing.T) {
	w := NewWeather(3, 2, 1, 5000, 5000)

	for i := 0; i < 5; i++ {
		change := AdvanceWeather(&w)
		assert.Equal(t, WeatherChange{}, change)
	}
	assert.Equal(t, 3, w.Hour)
	assert.Equal(t, 2, w.Temp)
}

func TestAdvanceWeather_NonPositiveDelayNeverFires(t *testing.T) {
	w := NewWeather(0, 0, 1, 0, -1)

	for i := 0; i < 10; i++ {
		assert.Equal(t, WeatherChange{}, AdvanceWeather(&w))
	}
	assert.Equal(t, 10, w.Cycle)
}
