// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
)

// GameScene is the windowed front end: a render system, the input system
// and the simulation system on one ecs world.
type GameScene struct {
	ctx      context.Context
	game     *engine.Game
	logger   *logging.Logger
	observer FrameObserver

	camera     *Camera
	renderer   *EngoRenderer
	input      *InputSystem
	simulation *SimulationSystem
}

// NewGameScene creates a scene for game. observer may be nil.
func NewGameScene(ctx context.Context, game *engine.Game, logger *logging.Logger, observer FrameObserver) *GameScene {
	return &GameScene{
		ctx:      ctx,
		game:     game,
		logger:   logger,
		observer: observer,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	if world == nil {
		scene.logger.Warn(scene.ctx, "scene updater is not an ecs world")
		return
	}

	common.SetBackground(BackgroundColor)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.build(world, renderSystem, NewCamera(
		scene.game.Arena.Width(), scene.game.Arena.Height(),
		engo.GameWidth(), engo.GameHeight(),
	), engoInput{})

	scene.game.Start()
	scene.logger.Info(scene.ctx, "scene ready",
		"arena_width", scene.game.Arena.Width(),
		"arena_height", scene.game.Arena.Height(),
		"zoom", scene.camera.Zoom(),
	)
}

// build creates the input, renderer and simulation and adds the systems to
// world in update order.
func (scene *GameScene) build(world *ecs.World, sink SpriteSink, camera *Camera, source InputSource) {
	scene.camera = camera
	scene.renderer = NewEngoRenderer(sink, camera)
	scene.input = NewInputSystemWithSource(source, camera)
	scene.simulation = NewSimulationSystem(scene.ctx, scene.game, scene.input, scene.renderer, scene.logger, scene.observer)

	world.AddSystem(scene.input)
	world.AddSystem(scene.simulation)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.game.Stop()
	stats := scene.game.Stats()
	scene.logger.Info(scene.ctx, "game over",
		"frames", stats.Frame,
		"shots", stats.ShotsFired,
		"hits", stats.Hits,
		"kills", stats.Kills,
	)
}
