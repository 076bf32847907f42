package game

import (
	"log/slog"

	"github.com/pthm-cable/cells/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		g.logWorldState()
		stats.LogStats()
		perfStats.LogStats()
		g.logPhases(perfStats)
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}

		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}

		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// samplePopulation collects the end-of-window population state.
func (g *Game) samplePopulation() telemetry.PopulationSample {
	n := g.cells.Len()
	sample := telemetry.PopulationSample{
		Count:    n,
		Capacity: g.cells.Cap(),
		Energies: make([]float64, 0, n),
		DNA:      make([]int, 0, n),
		Hour:     g.weather.Hour,
		Temp:     g.weather.Temp,
	}

	for i := 0; i < n; i++ {
		c := g.cells.At(i)
		sample.Energies = append(sample.Energies, float64(c.Energy))
		sample.DNA = append(sample.DNA, c.DNA)
	}

	return sample
}

// periodicSnapshot saves a snapshot every snapshotEvery ticks.
func (g *Game) periodicSnapshot() {
	if g.snapshotDir == "" || g.snapshotEvery <= 0 || g.tick%g.snapshotEvery != 0 {
		return
	}
	g.saveSnapshot(nil)
}

// saveSnapshot creates and saves a snapshot to disk.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	path, err := telemetry.SaveSnapshot(g.createSnapshot(bookmark), g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:  telemetry.SnapshotVersion,
		RNGSeed:  g.rngSeed,
		Tick:     g.tick,
		Weather:  telemetry.NewWeatherState(g.weather),
		Cells:    telemetry.NewCellStates(g.cells.AppendTo(nil)),
		Bookmark: bookmark,
	}
}
