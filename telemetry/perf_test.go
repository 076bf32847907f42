package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/cells/systems"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(systems.PhaseWeather)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(systems.PhaseCells)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	assert.Positive(t, stats.AvgTickDuration)
	assert.Contains(t, stats.PhaseAvg, systems.PhaseWeather)
	assert.Contains(t, stats.PhaseAvg, systems.PhaseCells)
	assert.NotContains(t, stats.PhaseAvg, systems.PhaseSnapshot)
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	// Overfill the window; old samples are overwritten
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(systems.PhaseCells)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Positive(t, stats.AvgTickDuration)
	assert.Positive(t, stats.TicksPerSecond)
	assert.LessOrEqual(t, stats.MinTickDuration, stats.MaxTickDuration)
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Greater(t, stats.PhasePct["slow"], stats.PhasePct["fast"])
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	assert.Zero(t, stats.AvgTickDuration)
	assert.NotNil(t, stats.PhaseAvg)
	assert.NotNil(t, stats.PhasePct)
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	assert.GreaterOrEqual(t, stats.FrameDuration, 15*time.Millisecond)
	assert.Positive(t, stats.FPS)
	assert.Less(t, stats.FPS, 70.0)
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct: map[string]float64{
			systems.PhaseWeather:  1,
			systems.PhaseCells:    97,
			systems.PhaseSnapshot: 2,
		},
	}

	row := stats.ToCSV(600)
	require.Equal(t, int32(600), row.WindowEnd)
	assert.Equal(t, int64(1500), row.AvgTickUS)
	assert.Equal(t, 1.0, row.WeatherPct)
	assert.Equal(t, 97.0, row.CellsPct)
	assert.Equal(t, 2.0, row.SnapshotPct)
	assert.Zero(t, row.TelemetryPct)
}
