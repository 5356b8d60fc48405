package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sporelife/rules"
)

// neighborOffsets lists the Moore neighborhood as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (row, col).
//
// Cells on the outer ring always report zero neighbors, whatever surrounds
// them, so border cells die within one generation and are never born.
// Coordinates outside the grid, and a nil grid, also report zero.
func CountLiveNeighbors(g *Grid, row, col int) int {
	if g == nil || row <= 0 || col <= 0 || row >= g.height-1 || col >= g.width-1 {
		return 0
	}

	count := 0
	for _, off := range neighborOffsets {
		if g.at(row+off[0], col+off[1]).Alive {
			count++
		}
	}
	return count
}

// Step computes the generation after g. frame is the index of g and is
// stamped as DieTime on every cell that dies during this transition.
func Step(g *Grid, frame int) (*Grid, error) {
	if err := checkStepGrid(g); err != nil {
		return nil, err
	}

	next, _ := NewGrid(g.width, g.height)
	stepRows(g, next, frame, 0, g.height)
	return next, nil
}

// Stepper computes generations on a pool of workers, each owning a disjoint
// band of rows. The zero value runs on runtime.NumCPU() workers.
type Stepper struct {
	// Workers is the number of goroutines; <= 0 means runtime.NumCPU().
	Workers int
	// Pool, when set, supplies the grids next generations are written into.
	Pool *GridPool
}

// Step calculates the next generation using parallel processing. The result
// is returned only once every band is complete.
func (s *Stepper) Step(g *Grid, frame int) (*Grid, error) {
	if err := checkStepGrid(g); err != nil {
		return nil, err
	}
	if s.workers() == 1 && s.Pool == nil {
		return Step(g, frame)
	}

	var next *Grid
	if s.Pool != nil {
		next = s.Pool.Get(g.width, g.height)
	} else {
		next, _ = NewGrid(g.width, g.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(s.workers(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, frame, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[Stepper.Step] worker failed")
	}
	return next, nil
}

func (s *Stepper) workers() int {
	if s == nil || s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}

// stepRows writes rows [startRow, endRow) of next from cur.
// It reads only cur, so bands may run concurrently.
func stepRows(cur, next *Grid, frame, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cur.width; col++ {
			next.set(row, col, nextCell(cur.at(row, col), CountLiveNeighbors(cur, row, col), frame))
		}
	}
}

func nextCell(c Cell, neighbors, frame int) Cell {
	outcome := rules.Classify(neighbors, c.Alive)
	switch {
	case outcome.Died():
		return Cell{Alive: false, DieTime: frame}
	case !outcome.Alive():
		return deadCell
	case outcome == rules.Survives:
		// DieTime carries over untouched
		return c
	default:
		return Cell{Alive: true, DieTime: NeverDied}
	}
}

func checkStepGrid(g *Grid) error {
	if g == nil {
		return errors.Wrap(ErrDimensionMismatch, "[Step] nil grid")
	}
	if g.width < 1 || g.height < 1 || len(g.cells) != g.width*g.height {
		return errors.Wrapf(ErrDimensionMismatch,
			"[Step] %dx%d grid holding %d cells", g.height, g.width, len(g.cells))
	}
	return nil
}
