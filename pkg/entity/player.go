// pkg/entity/player.go
package entity

import "github.com/opd-ai/go-hitscan/pkg/physics"

// Default player tuning.
const (
	PlayerRadius = 12.0
	PlayerSpeed  = 280.0 // units per second
)

// Player is the single player-controlled body.
type Player struct {
	BaseEntity
	Speed float64
}

// NewPlayer creates a player at position with the default radius and speed.
func NewPlayer(position physics.Vector2D) *Player {
	return &Player{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Radius:   PlayerRadius,
		},
		Speed: PlayerSpeed,
	}
}

// Move displaces the player along intent at its speed for dt seconds and
// clamps the center (not the circle's edge) to bounds. A non-zero intent is
// normalized first so diagonals are not faster.
func (p *Player) Move(intent physics.Vector2D, dt float64, bounds physics.Rect) {
	if !intent.IsZero() {
		intent = intent.Normalize()
	}
	p.Position = bounds.Clamp(p.Position.Add(intent.Scale(p.Speed * dt)))
}
