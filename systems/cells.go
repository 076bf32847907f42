package systems

import "github.com/pthm-cable/cells/components"

// DefaultMaxCells is the registry capacity used by the simulation.
const DefaultMaxCells = 2000

// CellRegistry is a bounded, dense, ordered collection of live cells.
// Order is evaluation order within a tick; removal shifts later cells down one
// slot so the order of the survivors never changes.
type CellRegistry struct {
	cells []components.Cell
	max   int
}

// NewCellRegistry creates an empty registry that holds at most maxCells cells.
func NewCellRegistry(maxCells int) *CellRegistry {
	if maxCells < 0 {
		maxCells = 0
	}
	return &CellRegistry{
		cells: make([]components.Cell, 0, maxCells),
		max:   maxCells,
	}
}

// Len returns the number of live cells.
func (r *CellRegistry) Len() int {
	return len(r.cells)
}

// Cap returns the maximum number of cells.
func (r *CellRegistry) Cap() int {
	return r.max
}

// Full reports whether no more cells can be added.
func (r *CellRegistry) Full() bool {
	return len(r.cells) >= r.max
}

// At returns the cell in slot i. The pointer refers to the slot, not the
// cell: after a Remove at or before i it points at a different cell.
func (r *CellRegistry) At(i int) *components.Cell {
	return &r.cells[i]
}

// Occupied reports whether any live cell sits on (x, y).
// Linear scan; positions move during a tick, so callers re-check after every mutation.
func (r *CellRegistry) Occupied(x, y int) bool {
	for i := range r.cells {
		if r.cells[i].X == x && r.cells[i].Y == y {
			return true
		}
	}
	return false
}

// Add appends a cell at the end of the evaluation order.
// Returns false without touching the registry when it is full.
func (r *CellRegistry) Add(c components.Cell) bool {
	if r.Full() {
		return false
	}
	r.cells = append(r.cells, c)
	return true
}

// Remove deletes the cell in slot i, shifting every later cell one slot earlier.
func (r *CellRegistry) Remove(i int) {
	copy(r.cells[i:], r.cells[i+1:])
	r.cells = r.cells[:len(r.cells)-1]
}

// AppendTo appends copies of the live cells, in order, to dst.
func (r *CellRegistry) AppendTo(dst []components.Cell) []components.Cell {
	return append(dst, r.cells...)
}

// AppendPositions appends the positions of the live cells, in order, to dst.
func (r *CellRegistry) AppendPositions(dst []components.Position) []components.Position {
	for i := range r.cells {
		dst = append(dst, r.cells[i].Pos())
	}
	return dst
}
