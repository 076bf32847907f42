package game

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pthm-cable/cells/telemetry"
)

// logPhases logs the per-phase tick breakdown, slowest first.
func (g *Game) logPhases(stats telemetry.PerfStats) {
	ids := g.systemRegistry.IDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return stats.PhaseAvg[ids[i]] > stats.PhaseAvg[ids[j]]
	})

	for _, id := range ids {
		avg, ok := stats.PhaseAvg[id]
		if !ok {
			continue
		}
		info, _ := g.systemRegistry.Get(id)
		slog.Info("phase",
			"tick", g.tick,
			"name", info.Name,
			"category", info.Category,
			"avg", avg.Round(time.Microsecond).String(),
			"pct", int(stats.PhasePct[id]*10)/10.0,
		)
	}
}

// logWorldState logs a one-line summary of the population.
func (g *Game) logWorldState() {
	var total, minEnergy, maxEnergy int
	for i := 0; i < g.cells.Len(); i++ {
		e := g.cells.At(i).Energy
		total += e
		if i == 0 || e < minEnergy {
			minEnergy = e
		}
		if i == 0 || e > maxEnergy {
			maxEnergy = e
		}
	}

	var avg float64
	if n := g.cells.Len(); n > 0 {
		avg = float64(total) / float64(n)
	}

	slog.Info("world",
		"tick", g.tick,
		"cells", g.cells.Len(),
		"energy_avg", avg,
		"energy_min", minEnergy,
		"energy_max", maxEnergy,
		"hour", g.weather.Hour,
		"temp", g.weather.Temp,
	)
}
