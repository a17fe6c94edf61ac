package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

func main() {
	config, err := parseConfig(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to open terminal: %v", err)
	}
	renderer, err := model.NewTerminalRenderer(screen)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	g, err := newGame(config, renderer)
	if err != nil {
		renderer.Close()
		log.Fatalf("%+v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		commands  = make(chan command)
		reason    string
	)
	eg.Go(func() error {
		pollEvents(egCtx, renderer.Screen(), commands)
		return nil
	})
	eg.Go(func() error {
		// finalizing the screen also unblocks pollEvents
		defer renderer.Close()
		defer cancel()

		var loopErr error
		reason, loopErr = g.loop(egCtx, commands)
		return loopErr
	})

	if err = eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in game loop: %+v\n", err)
		os.Exit(1)
	}
	displayFinalStats(g, reason)
}
