package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// RandomSource is the subset of *rand.Rand used for seeding
type RandomSource interface {
	IntN(n int) int
}

// Grid is a fixed-size board of cells stored row-major.
// A grid handed to a presenter is never modified again; the next generation
// is always built into a fresh (or recycled) Grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of the given dimensions with every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width=%d height=%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Clear()
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Reset resizes the grid to new dimensions, killing every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if cap(g.cells) < width*height {
		g.cells = make([]Cell, width*height)
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear resets all cells to the never-died dead state
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = deadCell
	}
}

// Get returns the cell at (row, col)
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.contains(row, col) {
		return Cell{}, errors.Wrapf(ErrIndexOutOfBounds,
			"[Get] (%d,%d) outside %dx%d grid", row, col, g.height, g.width)
	}
	return g.at(row, col), nil
}

// Row returns a read-only view of a row; callers must not modify it.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.height {
		return nil
	}
	start := row * g.width
	return g.cells[start : start+g.width : start+g.width]
}

// SeedRandom marks count randomly chosen interior cells alive. Picks are made
// with replacement, so fewer than count distinct cells may end up alive.
func (g *Grid) SeedRandom(count int, rng RandomSource) {
	if g.width < 3 || g.height < 3 || count <= 0 {
		return
	}
	for range count {
		row := 1 + rng.IntN(g.height-2)
		col := 1 + rng.IntN(g.width-2)
		g.set(row, col, Cell{Alive: true, DieTime: 0})
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the live/dead pattern, ignoring DieTime
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c.Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (g *Grid) contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) at(row, col int) Cell {
	return g.cells[row*g.width+col]
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells[row*g.width+col] = c
}
