//go:build !ebiten

package render

import "github.com/sheikhrachel/sporelife/model"

// RunWindow always fails in the headless build.
func RunWindow(*model.Simulation, WindowOptions) error {
	return ErrWindowUnavailable
}
