package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/cells/components"
)

func registryOf(max int, cells ...components.Cell) *CellRegistry {
	reg := NewCellRegistry(max)
	for _, c := range cells {
		if !reg.Add(c) {
			panic("registryOf: registry full")
		}
	}
	return reg
}

func TestCellRegistry_AddUntilFull(t *testing.T) {
	reg := NewCellRegistry(2)

	assert.True(t, reg.Add(components.Cell{X: 1, Y: 1}))
	assert.True(t, reg.Add(components.Cell{X: 2, Y: 2}))
	assert.True(t, reg.Full())
	assert.False(t, reg.Add(components.Cell{X: 3, Y: 3}), "add past capacity is refused")
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 2, reg.Cap())
}

func TestCellRegistry_Occupied(t *testing.T) {
	reg := registryOf(10, components.Cell{X: 5, Y: 7}, components.Cell{X: 0, Y: 63})

	assert.True(t, reg.Occupied(5, 7))
	assert.True(t, reg.Occupied(0, 63))
	assert.False(t, reg.Occupied(7, 5))
	assert.False(t, NewCellRegistry(10).Occupied(0, 0))
}

func TestCellRegistry_RemoveKeepsOrder(t *testing.T) {
	reg := registryOf(10,
		components.Cell{X: 0, DNA: 0},
		components.Cell{X: 1, DNA: 1},
		components.Cell{X: 2, DNA: 2},
		components.Cell{X: 3, DNA: 3},
	)

	reg.Remove(1)
	require.Equal(t, 3, reg.Len())

	var got []int
	for _, c := range reg.AppendTo(nil) {
		got = append(got, c.DNA)
	}
	assert.Equal(t, []int{0, 2, 3}, got)

	// Slot 1 now holds the cell that followed the removed one.
	assert.Equal(t, 2, reg.At(1).DNA)

	reg.Remove(2)
	reg.Remove(0)
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, 2, reg.At(0).DNA)

	reg.Remove(0)
	assert.Equal(t, 0, reg.Len())
}

func TestCellRegistry_AppendPositions(t *testing.T) {
	reg := registryOf(10, components.Cell{X: 3, Y: 4}, components.Cell{X: 9, Y: 1})

	got := reg.AppendPositions(nil)
	assert.Equal(t, []components.Position{{X: 3, Y: 4}, {X: 9, Y: 1}}, got)
}

func TestCellRegistry_AtIsWritable(t *testing.T) {
	reg := registryOf(10, components.Cell{Energy: 5})
	reg.At(0).Energy = 9
	assert.Equal(t, 9, reg.AppendTo(nil)[0].Energy)
}

func TestClampCoord(t *testing.T) {
	for _, tc := range []struct {
		in, want int
	}{
		{-1, 0}, {0, 0}, {31, 31}, {63, 63}, {64, 63},
	} {
		assert.Equal(t, tc.want, clampCoord(tc.in), "clampCoord(%d)", tc.in)
	}
	assert.True(t, InBounds(0, 63))
	assert.False(t, InBounds(64, 0))
	assert.False(t, InBounds(0, -1))
}
