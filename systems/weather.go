package systems

import "github.com/pthm-cable/cells/components"

// Weather constants.
const (
	HoursPerDay = 25
	MaxTemp     = 10
	MinTemp     = -10

	// CycleWrap is where the tick counter returns to zero. Only the counter
	// modulo the delays is ever read, so the wrap is invisible whenever both
	// delays divide it.
	CycleWrap = 2000
)

// WeatherChange reports what AdvanceWeather changed.
type WeatherChange struct {
	Hour bool
	Temp bool
}

// NewWeather returns the weather at the start of a run.
func NewWeather(hour, temp, direction, hourDelay, tempDelay int) components.Weather {
	return components.Weather{
		Hour:      hour,
		Temp:      temp,
		Direction: direction,
		HourDelay: hourDelay,
		TempDelay: tempDelay,
	}
}

// AdvanceWeather counts one tick and applies the hour and temperature steps due on it.
// A non-positive delay never fires.
func AdvanceWeather(w *components.Weather) WeatherChange {
	var change WeatherChange
	w.Cycle++

	if w.HourDelay > 0 && w.Cycle%w.HourDelay == 0 {
		w.Hour = (w.Hour + 1) % HoursPerDay
		change.Hour = true
	}

	if w.TempDelay > 0 && w.Cycle%w.TempDelay == 0 {
		w.Temp += w.Direction
		// The ±1 step can only land exactly on a bound, which reverses it.
		if w.Temp == MaxTemp {
			w.Direction = -1
		} else if w.Temp == MinTemp {
			w.Direction = 1
		}
		change.Temp = true
	}

	if w.Cycle >= CycleWrap {
		w.Cycle = 0
	}

	return change
}
