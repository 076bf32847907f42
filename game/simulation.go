package game

import (
	"log/slog"

	"github.com/pthm-cable/cells/systems"
	"github.com/pthm-cable/cells/telemetry"
)

// Update handles input and runs this frame's ticks (graphics mode).
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// UpdateHeadless runs this update's ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// Step advances the simulation by one tick: weather first, then every cell
// in registry order.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(systems.PhaseWeather)
	g.tick++
	change := systems.AdvanceWeather(&g.weather)
	if change.Hour || change.Temp {
		slog.Debug("weather changed", "tick", g.tick, "hour", g.weather.Hour, "temp", g.weather.Temp)
	}

	g.perfCollector.StartPhase(systems.PhaseCells)
	g.stepCells()

	g.perfCollector.StartPhase(systems.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.StartPhase(systems.PhaseSnapshot)
	g.periodicSnapshot()

	g.perfCollector.EndTick()
}

// stepCells runs metabolism, death, action and division for each cell.
// Len is re-read every iteration: offspring appended this tick are evaluated
// this tick, and after a removal the same index is visited again because it
// now holds the next cell.
func (g *Game) stepCells() {
	hour := g.weather.Hour

	for i := 0; i < g.cells.Len(); i++ {
		c := g.cells.At(i)
		systems.Metabolize(c)

		dead := *c
		if systems.CheckDeath(g.cells, i) {
			g.collector.Record(telemetry.NewDeathEvent(g.tick, dead))
			i--
			continue
		}

		res := systems.PerformAction(g.cells, c, hour)
		g.collector.Record(telemetry.NewActionEvent(g.tick, *c, res))

		div := systems.Divide(g.cells, i, g.rng)
		g.collector.RecordAll(telemetry.NewDivisionEvents(g.tick, *g.cells.At(i), div))
	}
}
