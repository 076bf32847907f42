package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/pthm-cable/cells/telemetry"
)

// DNACount is one DNA value and how many cells carry it.
type DNACount struct {
	DNA   int
	Count int
}

// Summary is the aggregate view of one snapshot.
type Summary struct {
	Tick    int32
	Seed    int64
	Weather telemetry.WeatherState
	Cells   int

	EnergyMean, EnergyStd float64
	EnergyP10, EnergyP50  float64
	EnergyP90             float64
	DNADistinct           int
	DNAEntropy            float64
	TopDNA                []DNACount
	Bookmark              *telemetry.Bookmark
}

// summarize computes the aggregate view, keeping the topN most common DNA values.
func summarize(s *telemetry.Snapshot, topN int) Summary {
	sum := Summary{
		Tick:     s.Tick,
		Seed:     s.RNGSeed,
		Weather:  s.Weather,
		Cells:    len(s.Cells),
		Bookmark: s.Bookmark,
	}

	energies := make([]float64, len(s.Cells))
	dna := make([]int, len(s.Cells))
	counts := make(map[int]int)
	for i, c := range s.Cells {
		energies[i] = float64(c.Energy)
		dna[i] = c.DNA
		counts[c.DNA]++
	}

	sum.EnergyMean, sum.EnergyStd, sum.EnergyP10, sum.EnergyP50, sum.EnergyP90 = telemetry.ComputeEnergyStats(energies)
	sum.DNADistinct, sum.DNAEntropy = telemetry.ComputeDNAStats(dna)

	for d, n := range counts {
		sum.TopDNA = append(sum.TopDNA, DNACount{DNA: d, Count: n})
	}
	sort.Slice(sum.TopDNA, func(i, j int) bool {
		if sum.TopDNA[i].Count != sum.TopDNA[j].Count {
			return sum.TopDNA[i].Count > sum.TopDNA[j].Count
		}
		return sum.TopDNA[i].DNA < sum.TopDNA[j].DNA
	})
	if len(sum.TopDNA) > topN {
		sum.TopDNA = sum.TopDNA[:topN]
	}
	return sum
}

// Write prints the summary as plain text.
func (s Summary) Write(w io.Writer) {
	fmt.Fprintf(w, "Tick:    %d (seed %d)\n", s.Tick, s.Seed)
	if s.Bookmark != nil {
		fmt.Fprintf(w, "Event:   %s: %s\n", s.Bookmark.Type, s.Bookmark.Description)
	}
	fmt.Fprintf(w, "Weather: hour %d, temp %d, direction %+d, cycle %d\n",
		s.Weather.Hour, s.Weather.Temp, s.Weather.Direction, s.Weather.Cycle)
	fmt.Fprintf(w, "Cells:   %d\n", s.Cells)
	if s.Cells == 0 {
		return
	}
	fmt.Fprintf(w, "Energy:  mean %.1f, std %.1f, p10 %.0f, p50 %.0f, p90 %.0f\n",
		s.EnergyMean, s.EnergyStd, s.EnergyP10, s.EnergyP50, s.EnergyP90)
	fmt.Fprintf(w, "DNA:     %d distinct, entropy %.3f\n", s.DNADistinct, s.DNAEntropy)
	for _, d := range s.TopDNA {
		fmt.Fprintf(w, "  dna %2d: %d cells\n", d.DNA, d.Count)
	}
}
