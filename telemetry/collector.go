package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	births           int
	deaths           int
	divisionsBlocked int
	mutations        int
	photosynthesis   int
	photoEnergy      int
	moves            int
	movesRefused     int
	idles            int
}

// NewCollector creates a new stats collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
	}
}

// Record counts one event in the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventBirth:
		c.births++
	case EventDeath:
		c.deaths++
	case EventDivisionBlocked:
		c.divisionsBlocked++
	case EventMutation:
		c.mutations++
	case EventPhotosynthesis:
		c.photosynthesis++
		c.photoEnergy += ev.Amount
	case EventMove:
		c.moves++
	case EventMoveRefused:
		c.movesRefused++
	case EventIdle:
		c.idles++
	}
}

// RecordAll counts every event in events.
func (c *Collector) RecordAll(events []Event) {
	for _, ev := range events {
		c.Record(ev)
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// PopulationSample is the population state sampled at the end of a window.
type PopulationSample struct {
	Count    int
	Capacity int
	Energies []float64
	DNA      []int
	Hour     int
	Temp     int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, pop PopulationSample) WindowStats {
	mean, std, p10, p50, p90 := ComputeEnergyStats(pop.Energies)
	distinct, entropy := ComputeDNAStats(pop.DNA)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Cells:    pop.Count,
		Capacity: pop.Capacity,

		Births:           c.births,
		Deaths:           c.deaths,
		DivisionsBlocked: c.divisionsBlocked,
		Mutations:        c.mutations,

		Photosynthesis: c.photosynthesis,
		PhotoEnergy:    c.photoEnergy,
		Moves:          c.moves,
		MovesRefused:   c.movesRefused,
		Idles:          c.idles,

		EnergyMean: mean,
		EnergyStd:  std,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,

		DNADistinct: distinct,
		DNAEntropy:  entropy,

		Hour: pop.Hour,
		Temp: pop.Temp,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = 0
	c.deaths = 0
	c.divisionsBlocked = 0
	c.mutations = 0
	c.photosynthesis = 0
	c.photoEnergy = 0
	c.moves = 0
	c.movesRefused = 0
	c.idles = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
