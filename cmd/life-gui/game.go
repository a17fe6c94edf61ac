//go:build ebiten

package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	aliveColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	lineColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	background = color.White
)

// Game adapts an engine to the ebiten.Game interface
type Game struct {
	engine *model.Engine
	config utils.Config
	rng    *rand.Rand

	pattern  string
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game drawing engine's current board
func NewGame(engine *model.Engine, config utils.Config, rng *rand.Rand) *Game {
	return &Game{engine: engine, config: config, rng: rng}
}

// Reset clears the engine and seeds it with the configured pattern
func (g *Game) Reset() error {
	if err := g.engine.Initialize(g.config.Width, g.config.Height); err != nil {
		return errors.Wrap(err, "[Reset] failed to reinitialize engine")
	}

	var seedErr error
	if err := g.engine.Seed(func(b *model.Board) {
		g.pattern, seedErr = patterns.Seed(b, g.config.Pattern, g.rng, g.config.RandomDensity)
	}); err != nil {
		return errors.Wrap(err, "[Reset] failed to seed")
	}
	if seedErr != nil {
		return errors.Wrap(seedErr, "[Reset] failed to place pattern")
	}
	g.paused = false
	g.tickOnce = false
	return nil
}

// Update handles input and advances the simulation by one generation per tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	if reachedLimit(g.engine.Generation(), g.config.MaxGenerations) {
		g.paused = true
		g.tickOnce = false
	}
	if !g.paused || g.tickOnce {
		g.tickOnce = false
		if err := g.engine.Step(); err != nil {
			return errors.Wrap(err, "[Update] failed to step")
		}
	}
	return nil
}

// Draw paints live cells and the grid lines
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	var (
		cell   = float32(g.config.CellSize)
		w, h   = canvasSize(g.config.Width, g.config.Height, g.config.CellSize)
		living int
	)
	_ = g.engine.View(func(b *model.Board) {
		b.Cells(func(x, y int) {
			vector.DrawFilledRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, aliveColor, false)
			living++
		})
	})

	for x := 0; x <= w; x += g.config.CellSize {
		vector.StrokeLine(screen, 0.5+float32(x), 0, 0.5+float32(x), float32(h), 1, lineColor, false)
	}
	for y := 0; y <= h; y += g.config.CellSize {
		vector.StrokeLine(screen, 0, 0.5+float32(y), float32(w), 0.5+float32(y), 1, lineColor, false)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Gen: %d  Living: %d\nPattern: %s",
		g.engine.Generation(), living, g.pattern))
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasSize(g.config.Width, g.config.Height, g.config.CellSize)
}
