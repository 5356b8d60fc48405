package render

import (
	"image/color"

	"github.com/sheikhrachel/sporelife/model"
)

type cellState int

const (
	stateDead cellState = iota
	stateAlive
	// stateFading marks a cell that died in the transition into this frame
	stateFading
)

var palette = [...]color.RGBA{
	stateDead:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	stateAlive:  {R: 0x3c, G: 0xd0, B: 0x70, A: 0xff},
	stateFading: {R: 0x6e, G: 0x1e, B: 0x1e, A: 0xff},
}

func stateOf(c model.Cell, frame int) cellState {
	switch {
	case c.Alive:
		return stateAlive
	case c.DiedAt(frame - 1):
		return stateFading
	default:
		return stateDead
	}
}

// fillGridRGBA converts a generation into RGBA pixels in buf, one pixel per cell.
func fillGridRGBA(buf []byte, gen model.Generation) {
	g := gen.Grid
	i := 0
	for row := range g.Height() {
		for _, c := range g.Row(row) {
			col := palette[stateOf(c, gen.Frame)]
			buf[i+0] = col.R
			buf[i+1] = col.G
			buf[i+2] = col.B
			buf[i+3] = col.A
			i += 4
		}
	}
}
