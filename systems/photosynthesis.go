package systems

import "github.com/pthm-cable/cells/components"

// photosynthesisBase is the light level at the top row before the hour is added.
const photosynthesisBase = 20

// PhotosynthesisGain returns the energy a cell at row y gains at the given hour.
// Go's % truncates toward zero, so the gain is negative whenever
// 20 - y + hour is negative: deep cells lose energy early in the day.
func PhotosynthesisGain(y, hour int) int {
	return (photosynthesisBase - y + hour) % 10
}

// Photosynthesize applies the light gain for the current hour and returns it.
func Photosynthesize(c *components.Cell, hour int) int {
	gain := PhotosynthesisGain(c.Y, hour)
	c.Energy += gain
	return gain
}
