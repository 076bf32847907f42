package systems

import "github.com/pthm-cable/cells/components"

// MetabolicCost is the energy every cell pays each tick it is evaluated.
const MetabolicCost = 1

// Metabolize charges the per-tick metabolic cost.
func Metabolize(c *components.Cell) {
	c.Energy -= MetabolicCost
}

// Dead reports whether the cell has run out of energy.
func Dead(c components.Cell) bool {
	return c.Energy <= 0
}

// CheckDeath removes the cell in slot i if it has run out of energy and
// reports whether it did. After a removal slot i holds the next cell, which
// has not been evaluated yet this tick.
func CheckDeath(reg *CellRegistry, i int) bool {
	if !Dead(*reg.At(i)) {
		return false
	}
	reg.Remove(i)
	return true
}
