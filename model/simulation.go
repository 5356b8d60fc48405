package model

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Generation is one complete grid snapshot and the frame it belongs to
type Generation struct {
	Grid  *Grid
	Frame int
}

// Simulation owns the current generation and swaps in each new one atomically,
// so readers never observe a partially computed grid.
type Simulation struct {
	stepper *Stepper

	mu      sync.Mutex // serializes Advance
	current atomic.Pointer[Generation]
}

// NewSimulation starts a simulation at frame 0 from the given grid.
// A nil stepper runs on runtime.NumCPU() workers.
func NewSimulation(g *Grid, s *Stepper) *Simulation {
	if s == nil {
		s = &Stepper{}
	}
	sim := &Simulation{stepper: s}
	sim.current.Store(&Generation{Grid: g, Frame: 0})
	return sim
}

// Current returns the latest published generation
func (s *Simulation) Current() Generation {
	return *s.current.Load()
}

// Advance computes the next generation and publishes it with the frame
// counter incremented by one. On error the current generation is kept.
//
// With a pool configured, the retired grid is recycled, so a grid obtained
// from Current is only valid until the following Advance.
func (s *Simulation) Advance() (Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	next, err := s.stepper.Step(cur.Grid, cur.Frame)
	if err != nil {
		return *cur, errors.Wrapf(err, "[Advance] frame %d", cur.Frame)
	}

	gen := &Generation{Grid: next, Frame: cur.Frame + 1}
	s.current.Store(gen)
	if s.stepper.Pool != nil {
		s.stepper.Pool.Put(cur.Grid)
	}
	return *gen, nil
}
