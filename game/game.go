// Package game owns the simulation state and drives it one tick at a time.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/cells/components"
	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/systems"
	"github.com/pthm-cable/cells/telemetry"
)

// Options configures a new game.
type Options struct {
	Seed           int64
	LogStats       bool
	SnapshotDir    string
	SnapshotEvery  int32 // ticks between periodic snapshots; 0 = only at exit
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Config overrides the global config when set.
	Config *config.Config

	// StatsCallback is called with every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg     *config.Config
	rng     systems.Rand
	rngSeed int64

	cells   *systems.CellRegistry
	weather components.Weather

	// State
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	exitRequested  bool

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	systemRegistry   *systems.SystemRegistry
	statsCallback    func(telemetry.WindowStats)
	logStats         bool
	snapshotDir      string
	snapshotEvery    int32

	// Inspector
	selected    components.Position
	hasSelected bool

	// Reused by View
	positions []components.Position
}

// View is a read-only picture of the simulation for renderers.
type View struct {
	Tick      int32
	Hour      int
	Temp      int
	CellCount int
	Positions []components.Position // registry order
}

// NewGameWithOptions creates a game, spawns the founders and opens the
// configured output directory.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	g := newGame(cfg, rand.New(rand.NewSource(opts.Seed)), opts)
	g.rngSeed = opts.Seed

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	g.spawnInitialPopulation()

	slog.Info("simulation created",
		"seed", opts.Seed,
		"cells", g.cells.Len(),
		"max_cells", g.cells.Cap(),
		"hour", g.weather.Hour,
		"temp", g.weather.Temp,
	)

	return g
}

// newGame builds an empty game around rng.
func newGame(cfg *config.Config, rng systems.Rand, opts Options) *Game {
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	return &Game{
		cfg: cfg,
		rng: rng,

		cells: systems.NewCellRegistry(cfg.Population.Max),
		weather: systems.NewWeather(
			cfg.Weather.InitialHour,
			cfg.Weather.InitialTemp,
			cfg.Weather.InitialDirection,
			cfg.Weather.HourDelay,
			cfg.Weather.TempDelay,
		),

		headless:       opts.Headless,
		stepsPerUpdate: steps,

		collector:        telemetry.NewCollector(cfg.Derived.StatsWindow),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		systemRegistry:   systems.NewSystemRegistry(),
		statsCallback:    opts.StatsCallback,
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
		snapshotEvery:    opts.SnapshotEvery,
	}
}

// spawnInitialPopulation places the founders in the spawn region.
// A position that is already taken is drawn again.
func (g *Game) spawnInitialPopulation() {
	pop := g.cfg.Population

	for placed := 0; placed < g.cfg.Derived.Founders; {
		x := g.rng.Intn(pop.SpawnWidth)
		y := g.rng.Intn(pop.SpawnHeight)
		if g.cells.Occupied(x, y) {
			continue
		}

		g.cells.Add(components.Cell{
			X:      x,
			Y:      y,
			Energy: g.rng.Intn(pop.InitialEnergyMax),
			DNA:    g.rng.Intn(systems.DNASpace),
		})
		placed++
	}
}

// View returns the current positions and weather. Positions is only valid
// until the next tick.
func (g *Game) View() View {
	g.positions = g.cells.AppendPositions(g.positions[:0])
	return View{
		Tick:      g.tick,
		Hour:      g.weather.Hour,
		Temp:      g.weather.Temp,
		CellCount: g.cells.Len(),
		Positions: g.positions,
	}
}

// CellAt returns the cell occupying a square, if any.
func (g *Game) CellAt(x, y int) (components.Cell, bool) {
	for i := 0; i < g.cells.Len(); i++ {
		if c := g.cells.At(i); c.X == x && c.Y == y {
			return *c, true
		}
	}
	return components.Cell{}, false
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// CellCount returns the number of live cells.
func (g *Game) CellCount() int {
	return g.cells.Len()
}

// Cells returns a copy of the live cells in registry order.
func (g *Game) Cells() []components.Cell {
	return g.cells.AppendTo(nil)
}

// Weather returns the current weather.
func (g *Game) Weather() components.Weather {
	return g.weather
}

// ExitRequested reports whether the user asked to quit from inside the window.
func (g *Game) ExitRequested() bool {
	return g.exitRequested
}

// Unload writes the final snapshot and closes output files.
func (g *Game) Unload() {
	if g.snapshotDir != "" {
		g.saveSnapshot(nil)
	}

	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}

	slog.Info("simulation stopped",
		"tick", g.tick,
		"cells", g.cells.Len(),
		"hour", g.weather.Hour,
		"temp", g.weather.Temp,
	)
}
