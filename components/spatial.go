package components

// Position is a square on the simulation grid.
type Position struct {
	X, Y int
}
