// pkg/engine/state.go
package engine

import "github.com/opd-ai/go-hitscan/pkg/physics"

// GameState is a read-only snapshot of everything a presentation layer may
// draw.
type GameState struct {
	Frame   uint64
	Arena   ArenaState
	Player  PlayerState
	Enemies []EnemyState
}

// ArenaState is the playfield size
type ArenaState struct {
	Width  float64
	Height float64
}

// PlayerState is the player as seen by renderers
type PlayerState struct {
	Position physics.Vector2D
	Radius   float64
}

// EnemyState is one live enemy as seen by renderers
type EnemyState struct {
	ID             uint64
	Position       physics.Vector2D
	Radius         float64
	HealthFraction float64
}

// Snapshot copies the current state. Enemies appear in insertion order.
func (g *Game) Snapshot() GameState {
	enemies := make([]EnemyState, 0, len(g.Enemies))
	for _, e := range g.Enemies {
		enemies = append(enemies, EnemyState{
			ID:             uint64(e.ID),
			Position:       e.Position,
			Radius:         e.Radius,
			HealthFraction: e.HealthFraction(),
		})
	}

	return GameState{
		Frame: g.stats.Frame,
		Arena: ArenaState{
			Width:  g.Arena.Width(),
			Height: g.Arena.Height(),
		},
		Player: PlayerState{
			Position: g.Player.Position,
			Radius:   g.Player.Radius,
		},
		Enemies: enemies,
	}
}
