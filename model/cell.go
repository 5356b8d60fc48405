package model

// NeverDied is the DieTime of a cell that has not been observed to die.
const NeverDied = -1

// Cell is a single grid position
type Cell struct {
	Alive bool
	// DieTime is the frame at which the cell last went from alive to dead,
	// or NeverDied. It never feeds back into the transition rule.
	DieTime int
}

var deadCell = Cell{Alive: false, DieTime: NeverDied}

// DiedAt reports whether the cell died during the given frame
func (c Cell) DiedAt(frame int) bool {
	return !c.Alive && c.DieTime >= 0 && c.DieTime == frame
}
