package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cells/components"
	"github.com/pthm-cable/cells/systems"
)

var selectionColor = rl.NewColor(255, 220, 60, 255)

// screenToGrid maps a window coordinate to the grid square under it.
func screenToGrid(mx, my float32, scale int32) (components.Position, bool) {
	if scale < 1 || mx < 0 || my < 0 {
		return components.Position{}, false
	}
	p := components.Position{X: int(mx) / int(scale), Y: int(my) / int(scale)}
	return p, systems.InBounds(p.X, p.Y)
}

// handleSelection selects the square under a left click; right click clears.
func (g *Game) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.hasSelected = false
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if p, ok := screenToGrid(mouse.X, mouse.Y, int32(g.cfg.Screen.Scale)); ok {
		g.selected = p
		g.hasSelected = true
	}
}

// inspectorLines describes the selected square. The selection follows the
// square, not the cell, so a move out of it shows the square as empty.
func (g *Game) inspectorLines() []string {
	if !g.hasSelected {
		return nil
	}
	lines := []string{fmt.Sprintf("Square: %d,%d", g.selected.X, g.selected.Y)}
	c, ok := g.CellAt(g.selected.X, g.selected.Y)
	if !ok {
		return append(lines, "empty")
	}
	return append(lines,
		fmt.Sprintf("Energy: %d", c.Energy),
		fmt.Sprintf("DNA: %d", c.DNA),
		fmt.Sprintf("Command: %d", c.Command),
		fmt.Sprintf("Light: %+d", systems.PhotosynthesisGain(c.Y, g.weather.Hour)),
	)
}

// drawInspector outlines the selected square and prints its cell at (x, y).
func (g *Game) drawInspector(x, y, scale int32) {
	lines := g.inspectorLines()
	if lines == nil {
		return
	}
	rl.DrawRectangleLines(int32(g.selected.X)*scale-1, int32(g.selected.Y)*scale-1, scale+2, scale+2, selectionColor)
	for _, line := range lines {
		rl.DrawText(line, x, y, 16, selectionColor)
		y += 20
	}
}
