package systems

import "github.com/pthm-cable/cells/components"

// Division constants.
const (
	// DivisionThreshold is the energy a cell must exceed to divide.
	DivisionThreshold = 100
	// MutationOdds is N in the one-in-N chance that an offspring's DNA mutates.
	MutationOdds = 10
	// DNASpace bounds DNA values to [0, DNASpace).
	DNASpace = 64
)

// DivisionOutcome is the result of a division attempt.
type DivisionOutcome uint8

const (
	DivisionSkipped DivisionOutcome = iota // too little energy or registry full
	DivisionBorn                           // offspring appended
	DivisionBlocked                        // target occupied, parent drained to zero
)

// Division describes one division attempt.
type Division struct {
	Outcome DivisionOutcome
	Mutated bool            // offspring DNA was mutated (set even when blocked)
	Child   components.Cell // valid when Outcome is DivisionBorn
}

// CanDivide reports whether the cell in slot i is allowed to attempt division.
func CanDivide(reg *CellRegistry, i int) bool {
	return reg.At(i).Energy > DivisionThreshold && !reg.Full()
}

// Divide attempts asexual reproduction of the cell in slot i.
//
// The offspring lands on a square offset by an independent draw from
// {-1, 0, 1} per axis, clamped to the grid. Its DNA mutates with probability
// 1/MutationOdds. Parent and offspring each get half of the parent's energy,
// truncated separately. If the square is taken the parent's energy drops to
// zero; the death check sweeps it on the next tick.
func Divide(reg *CellRegistry, i int, rng Rand) Division {
	if !CanDivide(reg, i) {
		return Division{Outcome: DivisionSkipped}
	}

	parent := *reg.At(i)
	x := clampCoord(parent.X + rng.Intn(3) - 1)
	y := clampCoord(parent.Y + rng.Intn(3) - 1)

	dna := parent.DNA
	mutated := false
	if rng.Intn(MutationOdds) == 0 {
		dna = (parent.DNA + int(rng.Int31())) % DNASpace
		mutated = true
	}

	if reg.Occupied(x, y) {
		reg.At(i).Energy = 0
		return Division{Outcome: DivisionBlocked, Mutated: mutated}
	}

	child := components.Cell{X: x, Y: y, Energy: parent.Energy / 2, DNA: dna}
	reg.Add(child)
	reg.At(i).Energy = parent.Energy / 2

	return Division{Outcome: DivisionBorn, Mutated: mutated, Child: child}
}
