package render

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
)

// ErrWindowUnavailable is returned by RunWindow in builds without the ebiten tag.
var ErrWindowUnavailable = errors.New("graphical window requires building with -tags ebiten")

// WindowOptions configures the graphical presenter
type WindowOptions struct {
	Title     string
	Scale     int
	StepOnKey bool
	FrameRate time.Duration
	// Status, when set, labels each frame.
	Status func(model.Generation) string
	// OnAdvance is called after every generation; returning false closes the window.
	OnAdvance func(model.Generation) bool
}
