//go:build ebiten

package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	cfg := utils.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	engine, err := model.NewEngine(cfg.Width, cfg.Height, model.WithWorkers(cfg.Workers))
	if err != nil {
		log.Fatalf("%+v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := NewGame(engine, cfg, patterns.NewRNG(seed))
	if err = game.Reset(); err != nil {
		log.Fatalf("%+v", err)
	}

	w, h := canvasSize(cfg.Width, cfg.Height, cfg.CellSize)
	ebiten.SetWindowTitle("life: " + game.pattern)
	ebiten.SetTPS(ticksPerSecond(cfg.FrameRate))
	ebiten.SetWindowSize(w, h)

	if err = ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
