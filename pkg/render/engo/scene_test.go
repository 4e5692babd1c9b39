// pkg/render/engo/scene_test.go
package engo

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-hitscan/pkg/config"
	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/logging"
)

func newSceneGame() *engine.Game {
	cfg := config.DefaultConfig()
	cfg.Spawn.InitialEnemies = 2
	return engine.NewGame(cfg, rand.New(rand.NewPCG(5, 6)), nil)
}

func TestGameScene_Type(t *testing.T) {
	scene := NewGameScene(context.Background(), newSceneGame(), logging.NewDiscardLogger(), nil)

	if got := scene.Type(); got != "GameScene" {
		t.Errorf("Type() = %q, expected %q", got, "GameScene")
	}
}

func TestGameScene_BuildOrdersSystems(t *testing.T) {
	scene := NewGameScene(context.Background(), newSceneGame(), logging.NewDiscardLogger(), nil)
	world := &ecs.World{}

	scene.build(world, newFakeSink(), identityCamera(), &fakeSource{down: map[string]bool{}})

	systems := world.Systems()
	if len(systems) != 2 {
		t.Fatalf("world has %d systems, expected 2", len(systems))
	}
	if _, ok := systems[0].(*InputSystem); !ok {
		t.Errorf("first system is %T, expected *InputSystem", systems[0])
	}
	if _, ok := systems[1].(*SimulationSystem); !ok {
		t.Errorf("second system is %T, expected *SimulationSystem", systems[1])
	}
}

func TestGameScene_WorldUpdateStepsGame(t *testing.T) {
	game := newSceneGame()
	scene := NewGameScene(context.Background(), game, logging.NewDiscardLogger(), nil)
	world := &ecs.World{}
	scene.build(world, newFakeSink(), identityCamera(), &fakeSource{down: map[string]bool{}})

	world.Update(1.0 / 60)
	world.Update(1.0 / 60)

	if game.Stats().Frame != 2 {
		t.Errorf("Frame = %d after two world updates, expected 2", game.Stats().Frame)
	}
	if scene.renderer.EnemySprites() != len(game.Enemies) {
		t.Errorf("EnemySprites() = %d, expected %d", scene.renderer.EnemySprites(), len(game.Enemies))
	}
}

func TestGameScene_ExitStopsGame(t *testing.T) {
	game := newSceneGame()
	scene := NewGameScene(context.Background(), game, logging.NewDiscardLogger(), nil)
	game.Start()

	scene.Exit()
	if game.Running {
		t.Error("game still running after scene Exit")
	}
}
