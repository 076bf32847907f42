// Package components defines the plain data shared by the simulation systems.
package components

// Cell is one living agent on the grid.
type Cell struct {
	X, Y    int // grid square, always inside the grid
	Energy  int // may reach zero or below until the next death check sweeps it
	DNA     int // genetic code in [0, 64)
	Command int // behavioral counter cycling through [0, 10)
}

// Pos returns the square the cell occupies.
func (c Cell) Pos() Position {
	return Position{X: c.X, Y: c.Y}
}
