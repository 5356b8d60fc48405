package rules

// Outcome is the fate of a single cell for the next generation.
type Outcome int

const (
	// StaysDead: a dead cell without exactly three neighbors.
	StaysDead Outcome = iota
	// Underpopulation: a live cell with fewer than two neighbors.
	Underpopulation
	// Survives: a live cell with two or three neighbors.
	Survives
	// Overpopulation: a live cell with more than three neighbors.
	Overpopulation
	// Birth: a dead cell with exactly three neighbors.
	Birth
)

/*
Classify applies Conway's Game of Life rules (B3/S23) to a cell.

Exactly one outcome holds for any (neighbors, alive) pair.
*/
func Classify(neighbors int, alive bool) Outcome {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors <= 3:
		return Survives
	case alive:
		return Overpopulation
	case neighbors == 3:
		return Birth
	default:
		return StaysDead
	}
}

// Alive reports whether the cell is alive after the outcome
func (o Outcome) Alive() bool {
	return o == Survives || o == Birth
}

// Died reports whether the outcome is a death transition
func (o Outcome) Died() bool {
	return o == Underpopulation || o == Overpopulation
}

func (o Outcome) String() string {
	switch o {
	case StaysDead:
		return "stays dead"
	case Underpopulation:
		return "underpopulation"
	case Survives:
		return "survives"
	case Overpopulation:
		return "overpopulation"
	case Birth:
		return "birth"
	default:
		return "unknown"
	}
}
