package model

import "sync"

// GridPool recycles retired generations so a long run does not allocate a
// fresh board every frame. Only the Simulation that published a grid may
// retire it, and only once a newer generation has replaced it.
type GridPool struct {
	grids sync.Pool
}

func NewGridPool() *GridPool {
	p := &GridPool{}
	p.grids.New = func() any { return &Grid{} }
	return p
}

// Get hands out a grid of the given dimensions with every cell dead and
// never died, ready to receive a next generation.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.grids.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put retires a grid. The caller gives up every reference to it: readers
// still holding the grid would see it overwritten by a later generation.
// Cells are cleared lazily by Get.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.grids.Put(g)
}
