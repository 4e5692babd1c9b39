// cmd/hitscan/terminal.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
	"github.com/opd-ai/go-hitscan/pkg/metrics"
	"github.com/opd-ai/go-hitscan/pkg/render"
	"github.com/opd-ai/go-hitscan/pkg/validation"
)

// runTerminal drives the game in the terminal until the player quits or the
// process is signalled.
func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger, observer metrics.FrameObserver, tick time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	renderer := render.NewTerminalRenderer(screen, game.Arena.Width(), game.Arena.Height())
	input := render.NewTerminalInput()
	frames := newFrameStepper(ctx, game, logger, observer)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	game.Start()
	defer game.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigChan:
			logger.Info(ctx, "Received signal, shutting down", "signal", sig.String())
			return nil
		case ev := <-events:
			input.HandleEvent(ev, time.Now())
			if input.QuitRequested() {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case now := <-ticker.C:
			if !frames.step(input.Sample(now, renderer.Viewport())) {
				continue
			}

			stats := game.Stats()
			renderer.SetStatus(fmt.Sprintf(" kills %d  shots %d  enemies %d  [wasd move, space/click fire, q quit] ",
				stats.Kills, stats.ShotsFired, len(game.Enemies)))
			if err := engine.Draw(game.Snapshot(), renderer); err != nil {
				return fmt.Errorf("failed to draw frame: %w", err)
			}
		}
	}
}

// pumpEvents forwards events from poll until poll returns nil or done is
// closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frameStepper advances the game by wall-clock time, skipping frames whose
// input fails validation.
type frameStepper struct {
	ctx      context.Context
	game     *engine.Game
	logger   *logging.Logger
	observer metrics.FrameObserver
	warnings *validation.RateLimiter
}

func newFrameStepper(ctx context.Context, game *engine.Game, logger *logging.Logger, observer metrics.FrameObserver) *frameStepper {
	return &frameStepper{
		ctx:      ctx,
		game:     game,
		logger:   logger,
		observer: observer,
		warnings: validation.NewRateLimiter(5, time.Second),
	}
}

// step runs one frame and reports whether the game advanced. The game
// measures and caps its own dt, so only the aim needs checking here.
func (f *frameStepper) step(in engine.Input) bool {
	if err := validation.ValidateAim(in.Aim); err != nil {
		reason := validation.Reason(err)
		f.observer.RejectFrame(reason)
		if f.warnings.Allow(reason) {
			f.logger.Warn(f.ctx, "skipping frame", "reason", reason, "error", err.Error())
		}
		return false
	}

	dt := f.game.Update(in)
	f.observer.ObserveFrame(dt, len(f.game.Enemies))
	return true
}
