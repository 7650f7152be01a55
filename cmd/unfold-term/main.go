package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"unfold/internal/app"
	"unfold/internal/audio"
	"unfold/internal/core"
	"unfold/internal/engine"
	_ "unfold/internal/patterns/escape"
	_ "unfold/internal/patterns/flower"
	_ "unfold/internal/patterns/htree"
	"unfold/internal/term"
)

// poll is the loop wake-up interval; FixedStep decides when a frame is due.
const poll = 5 * time.Millisecond

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	pattern, err := core.ParsePattern(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("%w (have %v)", err, core.Patterns())
	}

	eng, err := engine.New(engine.Options{
		Pattern: pattern,
		Level:   cfg.Level,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	chime := audio.NewPlayer(cfg.Mute)
	if err := chime.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer chime.Close()

	view := term.NewView(screen)
	pace := core.NewFixedStep(cfg.TPS, nil)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			act := term.Translate(ev)
			switch {
			case act.Quit:
				return nil
			case act.Resize:
				view.Resize()
				screen.Sync()
			case act.Pattern != "":
				if err := eng.SelectPattern(act.Pattern); err != nil && !errors.Is(err, core.ErrUnknownPattern) {
					return err
				}
			case act.Dir != 0:
				if eng.RequestLevelChange(act.Dir, act.Input) {
					chime.Level(eng.State().Target)
				}
			}
		case <-ticker.C:
			if !pace.ShouldStep() {
				continue
			}
			p := view.Placement()
			view.Draw(eng.RenderFrame(p.Transform(eng.Buffer().W)))
		}
	}
}
