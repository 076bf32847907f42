package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population at window end
	Cells    int `csv:"cells"`
	Capacity int `csv:"capacity"`

	// Lifecycle events during window
	Births           int `csv:"births"`
	Deaths           int `csv:"deaths"`
	DivisionsBlocked int `csv:"divisions_blocked"`
	Mutations        int `csv:"mutations"`

	// Actions during window
	Photosynthesis int `csv:"photosynthesis"`
	PhotoEnergy    int `csv:"photo_energy"` // net, can be negative
	Moves          int `csv:"moves"`
	MovesRefused   int `csv:"moves_refused"`
	Idles          int `csv:"idles"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Genetic diversity
	DNADistinct int     `csv:"dna_distinct"`
	DNAEntropy  float64 `csv:"dna_entropy"` // nats

	// Weather at window end
	Hour int `csv:"hour"`
	Temp int `csv:"temp"`
}

// ComputeEnergyStats calculates mean, standard deviation and empirical
// percentiles of the energy values. Returns zeros for an empty slice.
func ComputeEnergyStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.MeanStdDev(sorted, nil)
	if n < 2 {
		std = 0
	}

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// ComputeDNAStats returns the number of distinct DNA values and the Shannon
// entropy of their distribution in nats.
func ComputeDNAStats(dna []int) (distinct int, entropy float64) {
	if len(dna) == 0 {
		return 0, 0
	}

	counts := make(map[int]int)
	for _, d := range dna {
		counts[d]++
	}

	p := make([]float64, 0, len(counts))
	total := float64(len(dna))
	for _, n := range counts {
		p = append(p, float64(n)/total)
	}

	return len(counts), stat.Entropy(p)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("cells", s.Cells),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("divisions_blocked", s.DivisionsBlocked),
		slog.Int("mutations", s.Mutations),
		slog.Int("photosynthesis", s.Photosynthesis),
		slog.Int("photo_energy", s.PhotoEnergy),
		slog.Int("moves", s.Moves),
		slog.Int("moves_refused", s.MovesRefused),
		slog.Int("idles", s.Idles),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Int("dna_distinct", s.DNADistinct),
		slog.Float64("dna_entropy", s.DNAEntropy),
		slog.Int("hour", s.Hour),
		slog.Int("temp", s.Temp),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
