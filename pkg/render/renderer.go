// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
)

// NullRenderer implements engine.Renderer by logging each draw call at debug
// level. Headless runs use it.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a NullRenderer. A nil logger gets the default one.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements engine.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called", "frame", d.frames)
}

// RenderPlayer implements engine.Renderer.
func (d *NullRenderer) RenderPlayer(p engine.PlayerState) {
	d.logger.Debug(context.Background(), "RenderPlayer called",
		"x", p.Position.X,
		"y", p.Position.Y,
	)
}

// RenderEnemy implements engine.Renderer.
func (d *NullRenderer) RenderEnemy(e engine.EnemyState) {
	d.logger.Debug(context.Background(), "RenderEnemy called",
		"enemy_id", e.ID,
		"x", e.Position.X,
		"y", e.Position.Y,
		"health", e.HealthFraction,
	)
}

// Present implements engine.Renderer.
func (d *NullRenderer) Present() error {
	d.frames++
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
	return nil
}

// Frames returns how many frames have been presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}
