package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sporelife/model"
	"github.com/sheikhrachel/sporelife/render"
	"github.com/sheikhrachel/sporelife/utils"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sporelife: ")

	config, err := utils.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	g, err := initializeGame(config)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDimension) {
			log.Fatalf("invalid board size: %v", err)
		}
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = play(ctx, g); err != nil {
		log.Fatal(err)
	}

	log.Printf("%d generations in %.1f seconds (seed %d, avg population %.1f)",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds(), g.seed, g.stats.AveragePopulation)
}

// play selects a presenter from the configuration and runs the game on it
func play(ctx context.Context, g *game) error {
	config := g.config

	if config.Plain {
		return g.run(ctx, newStreamPresenter(os.Stdout, os.Stdin, config))
	}

	if !config.Console {
		err := render.RunWindow(g.sim, render.WindowOptions{
			Title:     fmt.Sprintf("sporelife %dx%d", config.Width, config.Height),
			Scale:     config.Scale,
			StepOnKey: config.StepOnKey,
			FrameRate: config.FrameRate,
			Status:    g.status,
			OnAdvance: g.recordGeneration,
		})
		if !errors.Is(err, render.ErrWindowUnavailable) {
			return err
		}
		log.Printf("%v; falling back to the console", err)
		time.Sleep(time.Second)
	}

	console, err := render.NewConsole(config.StepOnKey, config.FrameRate)
	if err != nil {
		return err
	}
	defer console.Close()
	return g.run(ctx, console)
}
