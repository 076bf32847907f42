package game

import rl "github.com/gen2brain/raylib-go/raylib"

// maxStepsPerUpdate bounds the speed-up keys.
const maxStepsPerUpdate = 10

// handleInput processes keyboard input. Backspace is the window's exit key
// and is handled by raylib.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	g.handleSelection()
}
