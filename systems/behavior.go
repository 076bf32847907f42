package systems

import "github.com/pthm-cable/cells/components"

// CommandCycle is the number of command values a cell cycles through.
const CommandCycle = 10

// Action is what a cell does on its turn.
type Action uint8

const (
	ActionPhotosynthesize Action = iota // action values 0-4
	ActionMove                          // action values 5-7
	ActionIdle                          // action values 8-9, reserved
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionPhotosynthesize:
		return "photosynthesize"
	case ActionMove:
		return "move"
	case ActionIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// ActionResult describes the outcome of one PerformAction call.
type ActionResult struct {
	Action Action
	Gain   int  // photosynthesis energy change, possibly negative
	Moved  bool // move accepted
}

// SelectAction maps the cell's command and DNA onto an action.
func SelectAction(c components.Cell) Action {
	switch v := (c.Command + c.DNA) % CommandCycle; {
	case v <= 4:
		return ActionPhotosynthesize
	case v <= 7:
		return ActionMove
	default:
		return ActionIdle
	}
}

// MoveOffset returns the displacement a cell's DNA encodes. The same value
// applies to both axes, so cells only ever move diagonally or stay put.
func MoveOffset(dna int) int {
	return dna%3 - 1
}

// Move tries to step the cell by its DNA offset. The target is clamped to the
// grid; if it is occupied (including by the cell itself) nothing changes.
// Returns whether the cell moved.
func Move(reg *CellRegistry, c *components.Cell) bool {
	d := MoveOffset(c.DNA)
	x := clampCoord(c.X + d)
	y := clampCoord(c.Y + d)

	if reg.Occupied(x, y) {
		return false
	}

	c.Energy--
	c.X = x
	c.Y = y
	return true
}

// PerformAction runs the cell's action for this tick and advances its command.
// c must point into reg.
func PerformAction(reg *CellRegistry, c *components.Cell, hour int) ActionResult {
	if c.Command >= CommandCycle {
		c.Command = 0
	}

	res := ActionResult{Action: SelectAction(*c)}
	switch res.Action {
	case ActionPhotosynthesize:
		res.Gain = Photosynthesize(c, hour)
	case ActionMove:
		res.Moved = Move(reg, c)
	case ActionIdle:
	}

	c.Command++
	return res
}
