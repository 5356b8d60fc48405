//go:build ebiten

package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/sporelife/model"
)

// window adapts a Simulation to the ebiten.Game interface.
type window struct {
	sim    *model.Simulation
	opts   WindowOptions
	pace   *pacer
	paused bool

	w, h int
	img  *ebiten.Image
	buf  []byte

	err error
}

// RunWindow opens a window and drives the simulation from its update loop
// until the window is closed, Q or Escape is pressed, or OnAdvance asks to stop.
func RunWindow(sim *model.Simulation, opts WindowOptions) error {
	g := sim.Current().Grid
	win := &window{
		sim:  sim,
		opts: opts,
		pace: newPacer(opts.FrameRate),
		w:    g.Width(),
		h:    g.Height(),
		img:  ebiten.NewImage(g.Width(), g.Height()),
		buf:  make([]byte, 4*g.Width()*g.Height()),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(win.w*opts.Scale, win.h*opts.Scale)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunWindow] game loop failed")
	}
	return win.err
}

// Update handles input and advances the simulation when a generation is due.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	advance := false
	switch {
	case w.opts.StepOnKey:
		advance = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyN) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			w.paused = !w.paused
			w.pace.restart(time.Now())
		}
		if w.paused {
			advance = inpututil.IsKeyJustPressed(ebiten.KeyN)
		} else {
			advance = w.pace.due(time.Now())
		}
	}
	if !advance {
		return nil
	}

	gen, err := w.sim.Advance()
	if err != nil {
		w.err = err
		return ebiten.Termination
	}
	if w.opts.OnAdvance != nil && !w.opts.OnAdvance(gen) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current generation scaled to the window.
func (w *window) Draw(screen *ebiten.Image) {
	gen := w.sim.Current()
	fillGridRGBA(w.buf, gen)
	w.img.WritePixels(w.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.opts.Scale), float64(w.opts.Scale))
	screen.DrawImage(w.img, op)

	if w.opts.Status != nil {
		text.Draw(screen, w.opts.Status(gen), basicfont.Face7x13, 4, 14, color.White)
	}
}

// Layout returns the logical screen size.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.w * w.opts.Scale, w.h * w.opts.Scale
}
