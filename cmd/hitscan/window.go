// cmd/hitscan/window.go
package main

import (
	"context"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
	"github.com/opd-ai/go-hitscan/pkg/metrics"
	engorender "github.com/opd-ai/go-hitscan/pkg/render/engo"
)

// runWindow opens an Engo window sized to the arena and blocks until it
// closes.
func runWindow(ctx context.Context, game *engine.Game, logger *logging.Logger, observer metrics.FrameObserver, fullscreen bool) {
	scene := engorender.NewGameScene(ctx, game, logger, observer)

	opts := engo.RunOptions{
		Title:      "Go Hitscan",
		Width:      int(game.Arena.Width()),
		Height:     int(game.Arena.Height()),
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
