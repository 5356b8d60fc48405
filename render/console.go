package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
)

// ErrQuit is returned by Wait when the user asks to leave.
var ErrQuit = errors.New("quit requested")

var (
	styleDead   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	styleAlive  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcellColor(stateAlive))
	styleFading = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcellColor(stateFading))
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

var cellRunes = [...]rune{
	stateDead:   ' ',
	stateAlive:  'O',
	stateFading: 'x',
}

// Console renders generations on a terminal screen, two columns per cell,
// below a one-line status bar.
type Console struct {
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	stepOnKey bool
	frameRate time.Duration
	paused    bool
}

// NewConsole takes over the controlling terminal.
func NewConsole(stepOnKey bool, frameRate time.Duration) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsole] creating screen")
	}
	return NewConsoleOnScreen(screen, stepOnKey, frameRate)
}

// NewConsoleOnScreen initializes the given screen and starts polling it for events.
func NewConsoleOnScreen(screen tcell.Screen, stepOnKey bool, frameRate time.Duration) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewConsoleOnScreen] initializing screen")
	}
	screen.HideCursor()
	screen.Clear()

	c := &Console{
		screen:    screen,
		events:    make(chan tcell.Event, 16),
		quit:      make(chan struct{}),
		stepOnKey: stepOnKey,
		frameRate: frameRate,
	}
	go c.poll()
	return c, nil
}

func (c *Console) poll() {
	defer close(c.events)
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.quit:
			return
		}
	}
}

// Present draws a generation and its status line.
func (c *Console) Present(gen model.Generation, status string) error {
	c.screen.Clear()
	drawText(c.screen, 0, 0, status, styleStatus)

	g := gen.Grid
	for row := range g.Height() {
		for col, cell := range g.Row(row) {
			state := stateOf(cell, gen.Frame)
			style := styleDead
			switch state {
			case stateAlive:
				style = styleAlive
			case stateFading:
				style = styleFading
			}
			c.screen.SetContent(col*2, row+1, cellRunes[state], nil, style)
			c.screen.SetContent(col*2+1, row+1, ' ', nil, style)
		}
	}
	c.screen.Show()
	return nil
}

// Wait blocks until the next generation is due: a key press in step mode,
// otherwise the frame timer. Space pauses the timer and n single-steps
// while paused. q, Escape and Ctrl-C return ErrQuit.
func (c *Console) Wait(ctx context.Context) error {
	var (
		timer *time.Timer
		tick  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if !c.stepOnKey && !c.paused && tick == nil {
			timer = time.NewTimer(c.frameRate)
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			return nil
		case ev, ok := <-c.events:
			if !ok {
				return ErrQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				c.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return ErrQuit
				}
				if c.stepOnKey {
					return nil
				}
				switch ev.Rune() {
				case ' ':
					c.paused = !c.paused
					if c.paused && timer != nil {
						timer.Stop()
						timer, tick = nil, nil
					}
				case 'n':
					if c.paused {
						return nil
					}
				}
			}
		}
	}
}

// Close restores the terminal.
func (c *Console) Close() error {
	close(c.quit)
	c.screen.Fini()
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(s cellState) tcell.Color {
	col := palette[s]
	return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
}
