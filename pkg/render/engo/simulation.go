// pkg/render/engo/simulation.go
package engo

import (
	"context"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
	"github.com/opd-ai/go-hitscan/pkg/validation"
)

// FrameObserver receives per-frame measurements. *metrics.Collector
// satisfies it.
type FrameObserver interface {
	ObserveFrame(dt float64, liveEnemies int)
	RejectFrame(reason string)
}

// SimulationSystem steps the game once per engo frame, using engo's frame
// delta as dt, and then draws the resulting snapshot. The step always
// completes before anything is drawn.
type SimulationSystem struct {
	ctx      context.Context
	game     *engine.Game
	input    *InputSystem
	renderer *EngoRenderer
	logger   *logging.Logger
	observer FrameObserver
	warnings *validation.RateLimiter

	exit func()
}

// NewSimulationSystem wires a game to its input and renderer. observer may
// be nil.
func NewSimulationSystem(ctx context.Context, game *engine.Game, input *InputSystem, renderer *EngoRenderer, logger *logging.Logger, observer FrameObserver) *SimulationSystem {
	return &SimulationSystem{
		ctx:      ctx,
		game:     game,
		input:    input,
		renderer: renderer,
		logger:   logger,
		observer: observer,
		warnings: validation.NewRateLimiter(5, time.Second),
		exit:     engo.Exit,
	}
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Priority implements ecs.Prioritizer.
func (s *SimulationSystem) Priority() int { return SimulationPriority }

// Update runs one frame.
func (s *SimulationSystem) Update(dt float32) {
	if s.input.QuitRequested() {
		s.logger.Info(s.ctx, "quit requested", "frame", s.game.Stats().Frame)
		s.exit()
		return
	}

	frameDT := float64(dt)
	in := s.input.Current()
	if err := validation.ValidateFrame(frameDT, in.Aim); err != nil {
		reason := validation.Reason(err)
		if s.observer != nil {
			s.observer.RejectFrame(reason)
		}
		if s.warnings.Allow(reason) {
			s.logger.Warn(s.ctx, "skipping frame", "reason", reason, "error", err.Error())
		}
		return
	}

	s.game.Step(frameDT, in)
	if s.observer != nil {
		s.observer.ObserveFrame(frameDT, len(s.game.Enemies))
	}

	s.renderer.SetAim(in.Aim)
	if err := engine.Draw(s.game.Snapshot(), s.renderer); err != nil {
		s.logger.Error(s.ctx, "draw failed", err)
	}
}
