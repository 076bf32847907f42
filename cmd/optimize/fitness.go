package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/cells/config"
	"github.com/pthm-cable/cells/game"
	"github.com/pthm-cable/cells/systems"
	"github.com/pthm-cable/cells/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 500,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int32                   // ticks before extinction (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		// Out-of-range combinations cannot run; rank them last
		return 0
	}

	// Run all seeds in parallel; each game owns its state
	fitness := make([]float64, len(fe.seeds))
	quality := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(cfg, s)
			quality[idx] = computeQuality(result.windowStats)
			fitness[idx] = computeFitness(result.survivalTicks, quality[idx])
		}(i, seed)
	}
	wg.Wait()

	fe.mu.Lock()
	fe.lastQuality = stat.Mean(quality, nil)
	fe.mu.Unlock()

	return stat.Mean(fitness, nil)
}

// runSimulation executes a single headless simulation run.
// Runs until extinction or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	result := &runResult{}

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()

		if g.CellCount() == 0 {
			result.survivalTicks = g.Tick()
			return result
		}
	}

	result.survivalTicks = fe.maxTicks
	return result
}

// copyConfig returns a copy of the base config with this run's stats window.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Telemetry.StatsWindow = fe.statsWindow
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
// Survival dominates; quality adds up to 20% bonus to differentiate
// configs with similar survival.
func computeFitness(survivalTicks int32, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightFill      = 0.40
	qualityWeightStability = 0.30
	qualityWeightDiversity = 0.30

	qualityWarmupWindows = 3 // skip first N windows (warmup)
)

// computeQuality scores the population history in [0, 1]: how full the grid
// stays, how steady the population is, and how diverse the DNA pool is.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	counts := make([]float64, len(valid))
	fill := make([]float64, len(valid))
	diversity := make([]float64, len(valid))
	maxEntropy := math.Log(systems.DNASpace)

	for i, w := range valid {
		counts[i] = float64(w.Cells)
		if w.Capacity > 0 {
			fill[i] = float64(w.Cells) / float64(w.Capacity)
		}
		diversity[i] = w.DNAEntropy / maxEntropy
	}

	stabilityScore := 0.0
	if mean, std := stat.MeanStdDev(counts, nil); mean > 0 && len(counts) >= 2 {
		cv := std / mean
		stabilityScore = math.Exp(-cv * cv)
	}

	quality := qualityWeightFill*stat.Mean(fill, nil) +
		qualityWeightStability*stabilityScore +
		qualityWeightDiversity*stat.Mean(diversity, nil)

	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
