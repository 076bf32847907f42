package systems

// Grid dimensions. The grid is a bounded plane: coordinates clamp, never wrap.
const (
	GridSize = 64
	MaxCoord = GridSize - 1
)

// Rand supplies the uniform integers used for placement, division jitter and mutation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Int31 returns a non-negative 31-bit value.
	Int31() int32
}

// clampCoord pins a coordinate to [0, MaxCoord].
func clampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x <= MaxCoord && y >= 0 && y <= MaxCoord
}
