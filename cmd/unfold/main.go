//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"unfold/internal/app"
	"unfold/internal/audio"
	"unfold/internal/core"
	"unfold/internal/engine"
	_ "unfold/internal/patterns/escape"
	_ "unfold/internal/patterns/flower"
	_ "unfold/internal/patterns/htree"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pattern, err := core.ParsePattern(cfg.Pattern)
	if err != nil {
		log.Fatalf("%v (have %v)", err, core.Patterns())
	}

	eng, err := engine.New(engine.Options{
		Pattern: pattern,
		Level:   cfg.Level,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	chime := audio.NewPlayer(cfg.Mute)
	if err := chime.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer chime.Close()

	game := app.New(eng, cfg.TPS, chime)
	side := int(float64(core.BufferSize) / engine.DisplayFraction * cfg.Scale)

	ebiten.SetWindowTitle("unfold")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
