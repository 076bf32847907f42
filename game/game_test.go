package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/cells/components"
	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/systems"
	"github.com/pthm-cable/cells/telemetry"
)

// testConfig loads the defaults and applies edit.
func testConfig(t *testing.T, edit func(*config.Config)) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	if edit != nil {
		edit(cfg)
	}
	require.NoError(t, cfg.Apply())
	return cfg
}

// quietWeather keeps hour and temperature fixed for the length of a test.
func quietWeather(hour int) func(*config.Config) {
	return func(cfg *config.Config) {
		cfg.Weather.HourDelay = 1 << 30
		cfg.Weather.TempDelay = 1 << 30
		cfg.Weather.InitialHour = hour
	}
}

// gameWith builds a game holding exactly the given cells.
func gameWith(t *testing.T, cfg *config.Config, cells ...components.Cell) *Game {
	t.Helper()
	g := newGame(cfg, rand.New(rand.NewSource(1)), Options{Headless: true})
	for _, c := range cells {
		require.True(t, g.cells.Add(c))
	}
	return g
}

// assertInvariants checks occupancy, bounds and capacity after a tick.
// Plain comparisons keep long runs fast.
func assertInvariants(t *testing.T, g *Game) {
	t.Helper()
	if g.cells.Len() > g.cells.Cap() {
		t.Fatalf("tick %d: %d cells over capacity %d", g.tick, g.cells.Len(), g.cells.Cap())
	}
	seen := make(map[components.Position]bool, g.cells.Len())
	for i := 0; i < g.cells.Len(); i++ {
		c := g.cells.At(i)
		if !systems.InBounds(c.X, c.Y) {
			t.Fatalf("tick %d: cell %d out of bounds: %+v", g.tick, i, *c)
		}
		if seen[c.Pos()] {
			t.Fatalf("tick %d: two cells at %+v", g.tick, c.Pos())
		}
		seen[c.Pos()] = true
		if c.DNA < 0 || c.DNA >= systems.DNASpace {
			t.Fatalf("tick %d: cell %d DNA out of range: %+v", g.tick, i, *c)
		}
		if c.Command < 0 || c.Command > systems.CommandCycle {
			t.Fatalf("tick %d: cell %d command out of range: %+v", g.tick, i, *c)
		}
	}
}

func TestSingleCellStarves(t *testing.T) {
	// At y=10 and hour 0 photosynthesis gains (20-10+0)%10 = 0
	g := gameWith(t, testConfig(t, quietWeather(0)),
		components.Cell{X: 10, Y: 10, Energy: 5, DNA: 0})

	for tick, want := range []int{4, 3, 2, 1} {
		g.Step()
		require.Equal(t, 1, g.CellCount(), "tick %d", tick+1)
		c := g.cells.At(0)
		assert.Equal(t, want, c.Energy, "tick %d", tick+1)
		assert.Equal(t, tick+1, c.Command)
		assert.Equal(t, components.Position{X: 10, Y: 10}, c.Pos())
	}

	g.Step()
	assert.Zero(t, g.CellCount())
	assert.Equal(t, int32(5), g.Tick())
}

func TestSingleCellTrace(t *testing.T) {
	g := gameWith(t, testConfig(t, quietWeather(3)),
		components.Cell{X: 10, Y: 10, Energy: 5, DNA: 0})

	type state struct {
		x, y, energy, command int
	}
	want := []state{
		{10, 10, 7, 1},  // photosynthesis +3
		{10, 10, 9, 2},  // photosynthesis +3
		{10, 10, 11, 3}, // photosynthesis +3
		{10, 10, 13, 4}, // photosynthesis +3
		{10, 10, 15, 5}, // photosynthesis +3
		{9, 9, 13, 6},   // move by (dna%3)-1 = -1
		{8, 8, 11, 7},   // move
		{7, 7, 9, 8},    // move
		{7, 7, 8, 9},    // no-op
		{7, 7, 7, 10},   // no-op
		{7, 7, 12, 1},   // command wraps; photosynthesis (20-7+3)%10 = 6
	}

	for i, w := range want {
		g.Step()
		require.Equal(t, 1, g.CellCount())
		c := g.cells.At(0)
		assert.Equal(t, w, state{c.X, c.Y, c.Energy, c.Command}, "tick %d", i+1)
	}
}

func TestDeathIsCheckedBeforeAction(t *testing.T) {
	g := gameWith(t, testConfig(t, quietWeather(0)),
		// Would photosynthesize +9 at y=1 if it acted
		components.Cell{X: 0, Y: 1, Energy: 1, DNA: 0},
		// DNA 8 selects a no-op on command 0
		components.Cell{X: 20, Y: 20, Energy: 50, DNA: 8},
	)

	g.Step()

	require.Equal(t, 1, g.CellCount())
	survivor := g.cells.At(0)
	assert.Equal(t, components.Position{X: 20, Y: 20}, survivor.Pos(), "removal compacts and the next cell is still evaluated")
	assert.Equal(t, 49, survivor.Energy, "a no-op costs exactly the metabolic unit")
	assert.Equal(t, 1, survivor.Command)
}

func TestConsecutiveDeathsAreAllRemoved(t *testing.T) {
	g := gameWith(t, testConfig(t, quietWeather(0)),
		components.Cell{X: 1, Y: 1, Energy: 1},
		components.Cell{X: 2, Y: 2, Energy: 0},
		components.Cell{X: 3, Y: 3, Energy: -4},
		components.Cell{X: 4, Y: 4, Energy: 30, DNA: 9},
	)

	g.Step()
	require.Equal(t, 1, g.CellCount())
	assert.Equal(t, components.Position{X: 4, Y: 4}, g.cells.At(0).Pos())
}

func TestOffspringActInTheSameTick(t *testing.T) {
	// DNA 8: command 0 is a no-op, so the parent keeps 149 and divides
	g := gameWith(t, testConfig(t, quietWeather(0)),
		components.Cell{X: 30, Y: 30, Energy: 150, DNA: 8})

	g.Step()

	cells := g.Cells()
	if len(cells) == 2 {
		assert.Equal(t, 74, cells[0].Energy)
		// Offspring starts at 74 and pays metabolism before its first action
		assert.LessOrEqual(t, cells[1].Energy, 73)
		assert.Equal(t, 1, cells[1].Command, "offspring ran its first action")
	} else {
		// Offspring landed on the parent's square; parent drained to 0
		require.Len(t, cells, 1)
		assert.Zero(t, cells[0].Energy)
		g.Step()
		assert.Zero(t, g.CellCount())
	}
}

func TestEmptyPopulationStillAdvancesWeather(t *testing.T) {
	g := gameWith(t, testConfig(t, nil))

	for i := 0; i < 3000; i++ {
		g.Step()
	}

	assert.Zero(t, g.CellCount())
	w := g.Weather()
	// Hour fires at cycle 1000 and 2000 (then wraps) and again at 1000
	assert.Equal(t, 3, w.Hour)
	// Temperature fires every 500 cycles: 4 times per 2000, twice more after
	assert.Equal(t, 6, w.Temp)
	assert.Equal(t, 1000, w.Cycle)
}

func TestSpawnInitialPopulation(t *testing.T) {
	cfg := testConfig(t, nil)
	g := NewGameWithOptions(Options{Seed: 7, Headless: true, Config: cfg})
	defer g.Unload()

	require.Equal(t, 30, g.CellCount())
	seen := make(map[components.Position]bool)
	for _, c := range g.Cells() {
		assert.Less(t, c.X, cfg.Population.SpawnWidth)
		assert.Less(t, c.Y, cfg.Population.SpawnHeight)
		assert.GreaterOrEqual(t, c.Energy, 0)
		assert.Less(t, c.Energy, cfg.Population.InitialEnergyMax)
		assert.Less(t, c.DNA, systems.DNASpace)
		assert.Zero(t, c.Command)
		assert.False(t, seen[c.Pos()], "founders never share a square")
		seen[c.Pos()] = true
	}
}

func TestSpawnFillsTheRegion(t *testing.T) {
	cfg := testConfig(t, func(cfg *config.Config) {
		cfg.Population.SpawnWidth = 4
		cfg.Population.SpawnHeight = 4
		cfg.Population.Initial = 100
	})
	require.Equal(t, 16, cfg.Derived.Founders)

	g := NewGameWithOptions(Options{Seed: 3, Headless: true, Config: cfg})
	defer g.Unload()
	assert.Equal(t, 16, g.CellCount())
}

func TestSameSeedSameRun(t *testing.T) {
	cfg := testConfig(t, func(cfg *config.Config) { cfg.Population.Max = 200 })

	run := func() []components.Cell {
		g := NewGameWithOptions(Options{Seed: 99, Headless: true, Config: cfg, StepsPerUpdate: 10})
		defer g.Unload()
		for i := 0; i < 40; i++ {
			g.UpdateHeadless()
		}
		require.Equal(t, int32(400), g.Tick())
		return g.Cells()
	}

	assert.Equal(t, run(), run())
}

func TestInvariantsHoldOverLongRuns(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		cfg := testConfig(t, func(cfg *config.Config) {
			cfg.Population.Max = 300
			cfg.Weather.HourDelay = 50
			cfg.Weather.TempDelay = 20
		})
		g := NewGameWithOptions(Options{Seed: seed, Headless: true, Config: cfg})

		for i := 0; i < 1500; i++ {
			g.Step()
			assertInvariants(t, g)
		}
		g.Unload()
	}
}

func TestPopulationNeverExceedsCapacity(t *testing.T) {
	cfg := testConfig(t, func(cfg *config.Config) {
		cfg.Population.Max = 5
		cfg.Weather.InitialHour = 9
	})
	g := NewGameWithOptions(Options{Seed: 11, Headless: true, Config: cfg})
	defer g.Unload()
	require.Equal(t, 5, g.CellCount())

	for i := 0; i < 500; i++ {
		g.Step()
		require.LessOrEqual(t, g.CellCount(), 5)
	}
}

func TestView(t *testing.T) {
	g := gameWith(t, testConfig(t, quietWeather(4)),
		components.Cell{X: 1, Y: 2, Energy: 50, DNA: 8},
		components.Cell{X: 3, Y: 4, Energy: 50, DNA: 8},
	)
	g.Step()

	view := g.View()
	assert.Equal(t, int32(1), view.Tick)
	assert.Equal(t, 4, view.Hour)
	assert.Equal(t, 0, view.Temp)
	assert.Equal(t, 2, view.CellCount)
	assert.Equal(t, []components.Position{{X: 1, Y: 2}, {X: 3, Y: 4}}, view.Positions)
}

func TestTelemetryAndSnapshots(t *testing.T) {
	cfg := testConfig(t, func(cfg *config.Config) {
		cfg.Telemetry.StatsWindow = 10
	})
	outDir := filepath.Join(t.TempDir(), "out")
	snapDir := filepath.Join(t.TempDir(), "snaps")

	var windows []telemetry.WindowStats
	g := NewGameWithOptions(Options{
		Seed:          5,
		Headless:      true,
		Config:        cfg,
		OutputDir:     outDir,
		SnapshotDir:   snapDir,
		SnapshotEvery: 20,
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})

	for i := 0; i < 25; i++ {
		g.Step()
	}
	final := g.Cells()
	g.Unload()

	require.Len(t, windows, 2)
	assert.Equal(t, int32(10), windows[0].WindowEndTick)
	assert.Equal(t, int32(20), windows[1].WindowEndTick)
	assert.Equal(t, 2000, windows[0].Capacity)

	for _, name := range []string{"telemetry.csv", "perf.csv", "bookmarks.csv", "config.yaml"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	periodic, err := telemetry.LoadSnapshot(filepath.Join(snapDir, "snapshot_20.json.zst"))
	require.NoError(t, err)
	assert.Equal(t, int32(20), periodic.Tick)
	assert.Equal(t, int64(5), periodic.RNGSeed)

	last, err := telemetry.LoadSnapshot(filepath.Join(snapDir, "snapshot_25.json.zst"))
	require.NoError(t, err)
	assert.Equal(t, telemetry.NewCellStates(final), last.Cells)
	assert.Equal(t, 25, last.Weather.Cycle)
}
