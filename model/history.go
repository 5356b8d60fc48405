package model

const historySize = 5

// History remembers hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds the grid's state to history, keeping only the last few
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// i.e. the board is still life or an oscillator of period 2 or 3.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
