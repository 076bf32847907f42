package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/cells/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	require.Nil(t, om)

	// Every method is a no-op on nil
	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0))
	assert.NoError(t, om.WriteBookmark(Bookmark{}))
	assert.NoError(t, om.WriteConfig(nil))
	assert.Empty(t, om.Dir())
	assert.NoError(t, om.Close())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, om.Dir())

	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 500, Cells: 30, Births: 2}))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 1000, Cells: 31}))
	require.NoError(t, om.WriteBookmark(Bookmark{Type: BookmarkExtinction, Tick: 1000, Description: "gone"}))
	require.NoError(t, om.WritePerf(PerfStats{}, 1000))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,cells,capacity,births"))
	assert.True(t, strings.HasPrefix(lines[1], "500,30,0,2"))
	assert.True(t, strings.HasPrefix(lines[2], "1000,31,"))

	data, err = os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	require.NoError(t, err)
	assert.Equal(t, "type,tick,description\nextinction,1000,gone\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cells_pct")
}

func TestOutputManagerWriteConfig(t *testing.T) {
	config.MustInit("")

	om, err := NewOutputManager(t.TempDir())
	require.NoError(t, err)
	defer om.Close()

	require.NoError(t, om.WriteConfig(config.Cfg()))

	loaded, err := config.Load(filepath.Join(om.Dir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Cfg().Population.Max, loaded.Population.Max)
}
