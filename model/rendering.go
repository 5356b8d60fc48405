package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	gridPosAlive = "O "
	gridPosDead  = ". "
	gridEdge     = "_"
)

// TerminalRenderer streams each generation as plain text
type TerminalRenderer struct {
	Out io.Writer
}

// Display writes the frame label and the grid framed by separator lines
func (r *TerminalRenderer) Display(gen Generation) error {
	g := gen.Grid
	w := bufio.NewWriter(r.Out)
	edge := strings.Repeat(gridEdge, g.width*2)

	fmt.Fprintf(w, "Frame: %d\n", gen.Frame)
	fmt.Fprintln(w, edge)
	for row := range g.height {
		for _, c := range g.Row(row) {
			if c.Alive {
				w.WriteString(gridPosAlive)
			} else {
				w.WriteString(gridPosDead)
			}
		}
		w.WriteByte('\n')
	}
	fmt.Fprintln(w, edge)
	return w.Flush()
}
