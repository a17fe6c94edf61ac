package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

type command int

const (
	cmdQuit command = iota
	cmdPause
	cmdStep
	cmdReseed
)

// game ties an engine to a renderer and the run-time controls
type game struct {
	config   utils.Config
	engine   *model.Engine
	history  *model.History
	renderer *model.TerminalRenderer // nil when running headless
	stats    *utils.Stats
	rng      *rand.Rand

	pattern       string
	paused        bool
	lastFrameTime time.Time
}

// parseConfig builds the run configuration: defaults, then the JSON file named by
// -config, then any other flags on top. A missing file falls back to the defaults.
func parseConfig(name string, args []string) (utils.Config, error) {
	var (
		config = utils.DefaultConfig()
		fs     = flag.NewFlagSet(name, flag.ContinueOnError)
		path   = fs.String("config", defaultConfigFile, "JSON config file")
	)
	config.Bind(fs)

	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	loaded, err := utils.LoadConfig(*path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Printf("Using default configuration (%s not found)\n", *path)
	case err != nil:
		return config, errors.Wrap(err, "[parseConfig] failed to load config")
	default:
		config = loaded
		// flags win over the file
		if err = fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[parseConfig] failed to parse flags")
		}
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[parseConfig] invalid configuration")
	}
	return config, nil
}

// newGame sets up the engine and seeds the first generation
func newGame(config utils.Config, renderer *model.TerminalRenderer) (*game, error) {
	engine, err := model.NewEngine(config.Width, config.Height, model.WithWorkers(config.Workers))
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to create engine")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		engine:   engine,
		history:  model.NewHistory(config.HistoryDepth, model.NewBoardPool()),
		renderer: renderer,
		stats:    utils.NewStats(),
		rng:      patterns.NewRNG(seed),
	}
	if err = g.reseed(); err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to seed board")
	}
	return g, nil
}

// reseed restarts the run from a freshly seeded generation 0
func (g *game) reseed() error {
	if err := g.engine.Initialize(g.config.Width, g.config.Height); err != nil {
		return errors.Wrap(err, "[reseed] failed to reinitialize engine")
	}

	var seedErr error
	if err := g.engine.Seed(func(b *model.Board) {
		g.pattern, seedErr = patterns.Seed(b, g.config.Pattern, g.rng, g.config.RandomDensity)
	}); err != nil {
		return errors.Wrap(err, "[reseed] failed to seed")
	}
	if seedErr != nil {
		return errors.Wrap(seedErr, "[reseed] failed to place pattern")
	}

	// the new pattern may leave parts of the old frame untouched
	if g.renderer != nil {
		g.renderer.Clear()
	}

	current := g.engine.CurrentBoard()
	g.stats.Population = current.CountLivingCells()
	g.history.Reset()
	g.history.Record(current)
	g.lastFrameTime = time.Now()
	return nil
}

// advance steps one generation and reports whether the run should stop and why
func (g *game) advance() (bool, string, error) {
	if err := g.engine.Step(); err != nil {
		return true, "", errors.Wrap(err, "[advance] failed to step")
	}

	generation := g.engine.Generation()
	current := g.engine.CurrentBoard()

	frameStart := time.Now()
	g.stats.Update(generation, current.CountLivingCells(),
		current.GetWidth()*current.GetHeight(), frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	if g.config.StopOnStable {
		if period, ok := g.history.Period(current); ok {
			return true, fmt.Sprintf("repeating with period %d", period), nil
		}
		g.history.Record(current)
	}

	if g.config.MaxGenerations > 0 && generation >= uint64(g.config.MaxGenerations) {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", g.config.MaxGenerations), nil
	}
	return false, "", nil
}

// render draws the current generation and its status line
func (g *game) render() {
	if g.renderer == nil {
		return
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	status := fmt.Sprintf("Gen: %d | Living: %d | Pattern: %s | %s",
		g.engine.Generation(), g.stats.Population, g.pattern, state)
	help := "q quit | space pause | n step | r reseed"

	_ = g.engine.View(func(b *model.Board) {
		g.renderer.Display(b, status, help)
	})
}

// loop drives one generation per tick until the context ends, a quit command
// arrives or advance asks to stop. Each tick finishes its step and render before
// the next one is taken.
func (g *game) loop(ctx context.Context, commands <-chan command) (string, error) {
	ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	g.render()
	for {
		select {
		case <-ctx.Done():
			return "interrupted", nil
		case cmd := <-commands:
			switch cmd {
			case cmdQuit:
				return "quit", nil
			case cmdPause:
				g.paused = !g.paused
			case cmdStep:
				if !g.paused {
					continue
				}
				if stop, reason, err := g.advance(); stop {
					return reason, err
				}
			case cmdReseed:
				if err := g.reseed(); err != nil {
					return "", err
				}
			}
			g.render()
		case <-ticker.C:
			if g.paused {
				continue
			}
			stop, reason, err := g.advance()
			g.render()
			if stop {
				return reason, err
			}
		}
	}
}

// pollEvents translates key presses into commands until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, commands chan<- command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		var cmd command
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			continue
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				cmd = cmdQuit
			case ev.Rune() == ' ':
				cmd = cmdPause
			case ev.Rune() == 'n':
				cmd = cmdStep
			case ev.Rune() == 'r':
				cmd = cmdReseed
			default:
				continue
			}
		default:
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// displayFinalStats prints the end-of-run summary once the screen is restored
func displayFinalStats(g *game, reason string) {
	fmt.Printf("Stopped: %s\n", reason)
	fmt.Printf("Pattern: %s | Board: %dx%d\n", g.pattern, g.config.Width, g.config.Height)
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.engine.Generation(), g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
