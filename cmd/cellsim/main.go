//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/Pseudonium/Cell-simulator/internal/app"
	"github.com/Pseudonium/Cell-simulator/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := pattern.Patterns()[cfg.Pattern]
	if !ok {
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	opts := pattern.Options{Size: cfg.Size, Seed: cfg.Seed, Density: cfg.Density}
	game, err := app.New(factory, opts, cfg.Scale, cfg.TPS)
	if err != nil {
		log.Fatalf("build grid: %v", err)
	}

	ebiten.SetWindowTitle("cellsim — " + cfg.Pattern)
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
