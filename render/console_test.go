package render

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
)

func newTestConsole(t *testing.T, stepOnKey bool, frameRate time.Duration) (*Console, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := NewConsoleOnScreen(screen, stepOnKey, frameRate)
	if err != nil {
		t.Fatalf("NewConsoleOnScreen: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, screen
}

func waitResult(t *testing.T, c *Console, ctx context.Context) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Wait(ctx) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return")
		return nil
	}
}

func TestConsolePresent(t *testing.T) {
	c, screen := newTestConsole(t, true, time.Second)

	g, err := model.NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	// one live interior cell which immediately dies
	g.SeedRandom(1, constSource(0))
	next, err := model.Step(g, 0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	if err := c.Present(model.Generation{Grid: g, Frame: 0}, "Frame: 0"); err != nil {
		t.Fatalf("Present: %v", err)
	}
	cells, width, _ := screen.GetContents()
	at := func(x, y int) rune {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			return ' '
		}
		return runes[0]
	}
	if got := at(0, 0); got != 'F' {
		t.Fatalf("status line starts with %q, want 'F'", got)
	}
	if got := at(2, 2); got != 'O' {
		t.Fatalf("live cell drawn as %q, want 'O'", got)
	}
	if got := at(0, 2); got != ' ' {
		t.Fatalf("dead cell drawn as %q, want blank", got)
	}

	if err := c.Present(model.Generation{Grid: next, Frame: 1}, "Frame: 1"); err != nil {
		t.Fatalf("Present: %v", err)
	}
	cells, width, _ = screen.GetContents()
	if got := at(2, 2); got != 'x' {
		t.Fatalf("just-died cell drawn as %q, want 'x'", got)
	}
}

func TestConsoleWaitQuit(t *testing.T) {
	for _, key := range []struct {
		key tcell.Key
		r   rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	} {
		c, screen := newTestConsole(t, true, time.Hour)
		screen.InjectKey(key.key, key.r, tcell.ModNone)
		if err := waitResult(t, c, context.Background()); !errors.Is(err, ErrQuit) {
			t.Errorf("key %v/%q: Wait err = %v, want ErrQuit", key.key, key.r, err)
		}
	}
}

func TestConsoleWaitStepOnKey(t *testing.T) {
	c, screen := newTestConsole(t, true, time.Hour)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if err := waitResult(t, c, context.Background()); err != nil {
		t.Fatalf("Wait err = %v, want nil", err)
	}
}

func TestConsoleWaitTimer(t *testing.T) {
	c, _ := newTestConsole(t, false, 10*time.Millisecond)
	if err := waitResult(t, c, context.Background()); err != nil {
		t.Fatalf("Wait err = %v, want nil", err)
	}
}

func TestConsoleWaitPausedSingleStep(t *testing.T) {
	c, screen := newTestConsole(t, false, time.Hour)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	if err := waitResult(t, c, context.Background()); err != nil {
		t.Fatalf("Wait err = %v, want nil", err)
	}
	if !c.paused {
		t.Fatal("console not paused after space")
	}
}

func TestConsoleWaitContextCanceled(t *testing.T) {
	c, _ := newTestConsole(t, true, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := waitResult(t, c, ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait err = %v, want context.Canceled", err)
	}
}

type constSource int

func (s constSource) IntN(n int) int { return int(s) % n }
