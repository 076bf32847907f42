package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cells/systems"
)

var (
	cellColor  = rl.NewColor(120, 220, 90, 255)
	gridBorder = rl.NewColor(60, 60, 60, 255)
)

// Draw renders the grid and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	view := g.View()
	scale := int32(g.cfg.Screen.Scale)

	g.drawCells(view, scale)
	g.drawHUD(view, scale)

	rl.EndDrawing()
}

// drawCells draws one square per cell, scale pixels wide.
func (g *Game) drawCells(view View, scale int32) {
	side := int32(systems.GridSize) * scale
	rl.DrawRectangleLines(0, 0, side, side, gridBorder)

	for _, p := range view.Positions {
		rl.DrawRectangle(int32(p.X)*scale, int32(p.Y)*scale, scale, scale, cellColor)
	}
}

// drawHUD draws the counters and the exit button to the right of the grid.
func (g *Game) drawHUD(view View, scale int32) {
	x := int32(systems.GridSize)*scale + 20
	y := int32(20)

	lines := []string{
		fmt.Sprintf("Cells: %d", view.CellCount),
		fmt.Sprintf("Temp: %d", view.Temp),
		fmt.Sprintf("Hour: %d", view.Hour),
		fmt.Sprintf("Tick: %d", view.Tick),
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	} else if g.stepsPerUpdate > 1 {
		lines = append(lines, fmt.Sprintf("Speed: %dx", g.stepsPerUpdate))
	}

	for _, line := range lines {
		rl.DrawText(line, x, y, 20, rl.RayWhite)
		y += 28
	}

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y + 10), Width: 100, Height: 30}, "exit") {
		g.exitRequested = true
	}

	g.drawInspector(x, y+60, scale)
}
