package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
	"github.com/sheikhrachel/sporelife/render"
	"github.com/sheikhrachel/sporelife/utils"
)

// Presenter renders generations and paces the loop between them
type Presenter interface {
	Present(gen model.Generation, status string) error
	// Wait blocks until the next generation is due; render.ErrQuit ends the run.
	Wait(ctx context.Context) error
	Close() error
}

// game bundles the simulation with the bookkeeping shown in the status line
type game struct {
	config  utils.Config
	sim     *model.Simulation
	stats   *utils.Stats
	history *model.History
	seed    int64

	// stagnant is computed for the latest recorded generation, before it
	// joins the history, so a board never matches itself.
	stagnant bool

	lastFrameTime time.Time
}

// initializeGame sets up the initial board and simulation
func initializeGame(config utils.Config) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] building board")
	}
	rng, seed := utils.NewRNG(config.Seed)
	grid.SeedRandom(config.Spores, rng)

	stepper := &model.Stepper{Workers: config.Workers}
	if config.UseMemoryPool {
		stepper.Pool = model.NewGridPool()
	}

	return &game{
		config:        config,
		sim:           model.NewSimulation(grid, stepper),
		stats:         utils.NewStats(),
		history:       &model.History{},
		seed:          seed,
		lastFrameTime: time.Now(),
	}, nil
}

// status describes a generation for the status line
func (g *game) status(gen model.Generation) string {
	livingCells := gen.Grid.CountLivingCells()
	density := float64(livingCells) / float64(gen.Grid.Width()*gen.Grid.Height()) * 100

	state := "Active"
	if g.stagnant {
		state = "Stagnant"
	}
	if livingCells == 0 {
		state = "Extinct"
	}

	return fmt.Sprintf("Frame: %d | Living: %d | Density: %.1f%% | %s | %.1f gen/sec",
		gen.Frame, livingCells, density, state, g.stats.GenerationsPerSecond)
}

// recordGeneration updates stats and history once a generation has been published.
// It reports whether the run should continue.
func (g *game) recordGeneration(gen model.Generation) bool {
	now := time.Now()
	g.stats.Record(gen.Frame, gen.Grid.CountLivingCells(), now.Sub(g.lastFrameTime))
	g.lastFrameTime = now
	g.stagnant = g.history.IsStagnant(gen.Grid)
	g.history.Record(gen.Grid)

	return g.config.MaxGenerations <= 0 || gen.Frame < g.config.MaxGenerations
}

// run presents, waits, then advances until the presenter quits, the context
// ends or the generation limit is reached.
func (g *game) run(ctx context.Context, p Presenter) error {
	for {
		gen := g.sim.Current()
		if err := p.Present(gen, g.status(gen)); err != nil {
			return errors.Wrapf(err, "[run] presenting frame %d", gen.Frame)
		}

		if err := p.Wait(ctx); err != nil {
			if errors.Is(err, render.ErrQuit) || errors.Is(err, context.Canceled) {
				return nil
			}
			return errors.Wrap(err, "[run] waiting for next frame")
		}

		next, err := g.sim.Advance()
		if err != nil {
			return err
		}
		if !g.recordGeneration(next) {
			// show the last generation before stopping
			return p.Present(next, g.status(next))
		}
	}
}

// streamPresenter writes plain text frames, pacing with a timer or, in
// step mode, one line of input per generation ("q" quits).
type streamPresenter struct {
	renderer  *model.TerminalRenderer
	out       io.Writer
	lines     chan string
	stepOnKey bool
	frameRate time.Duration
}

func newStreamPresenter(out io.Writer, in io.Reader, config utils.Config) *streamPresenter {
	s := &streamPresenter{
		renderer:  &model.TerminalRenderer{Out: out},
		out:       out,
		stepOnKey: config.StepOnKey,
		frameRate: config.FrameRate,
	}
	if s.stepOnKey {
		s.lines = make(chan string)
		go s.readLines(in)
	}
	return s
}

// readLines feeds input lines to Wait; the channel is closed at EOF
func (s *streamPresenter) readLines(in io.Reader) {
	defer close(s.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
}

func (s *streamPresenter) Present(gen model.Generation, status string) error {
	if err := s.renderer.Display(gen); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, status)
	return err
}

func (s *streamPresenter) Wait(ctx context.Context) error {
	if !s.stepOnKey {
		timer := time.NewTimer(s.frameRate)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case line, ok := <-s.lines:
		if !ok || strings.EqualFold(strings.TrimSpace(line), "q") {
			return render.ErrQuit
		}
		return nil
	}
}

func (s *streamPresenter) Close() error { return nil }
