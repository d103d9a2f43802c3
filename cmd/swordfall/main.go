package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/swordfall/audio"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/engine"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/input"
	"github.com/lixenwraith/swordfall/parameter"
	"github.com/lixenwraith/swordfall/render"
	"github.com/lixenwraith/swordfall/telemetry"
)

var (
	configPath = flag.String("config", "", "Path to a swordfall.toml, built-in tuning and SWORDFALL_* env when empty")
	debugFlag  = flag.Bool("debug", false, "Show frame and counter totals on the bottom row")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "swordfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	keys := input.DefaultKeyTable()
	if err := keys.Rebind(cfg.Keys); err != nil {
		return fmt.Errorf("failed to bind keys: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	router := event.NewRouter()

	// Audio failure leaves the game silent
	cues := audio.NewCuePlayer(cfg.Audio, logger.With().Str("component", "audio").Logger())
	if err := cues.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer cues.Close()
	router.Register(cues)

	metrics, err := telemetry.NewGlobal()
	if err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	match, err := engine.NewMatch(cfg,
		engine.WithLogger(logger.With().Str("component", "match").Logger()),
		engine.WithRouter(router),
		engine.WithInstruments(metrics),
	)
	if err != nil {
		return err
	}

	snap := input.NewSnapshot()
	term := input.NewTerminal(snap, keys, parameter.HoldWindow, parameter.LookCellScale, nil)

	orchestrator := render.NewDefaultOrchestrator(screen, *debugFlag)
	var runner *engine.Runner
	runner = engine.NewRunner(match, snap, engine.NewMonotonicTimeProvider(), cfg.Physics.FrameInterval,
		func(m *engine.Match) { orchestrator.RenderFrame(m, runner.Paused()) },
		logger.With().Str("component", "runner").Logger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer restore(screen, &err)
		return pollEvents(ctx, cancel, screen, term, runner, logger)
	})
	g.Go(func() (err error) {
		defer restore(screen, &err)
		return runner.Run(ctx)
	})

	// PollEvent blocks, wake it once the group is done
	go func() {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	err = g.Wait()
	logger.Info().Int64("frames", match.Frame()).Msg("swordfall exited")
	return err
}

// pollEvents feeds terminal events into the snapshot until quit or cancellation
// Focus loss pauses the simulation
func pollEvents(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, term *input.Terminal, runner *engine.Runner, logger zerolog.Logger) error {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			continue
		case *tcell.EventFocus:
			if ev.Focused {
				runner.Resume()
			} else {
				runner.Pause()
			}
			logger.Debug().Bool("focused", ev.Focused).Msg("focus changed")
		}

		if term.Handle(ev) {
			logger.Info().Msg("quit requested")
			cancel()
			return nil
		}
	}
}

// restore turns a goroutine panic into an error after giving the terminal back
func restore(screen tcell.Screen, err *error) {
	if r := recover(); r != nil {
		screen.Fini()
		*err = fmt.Errorf("crashed: %v\n%s", r, debug.Stack())
	}
}
