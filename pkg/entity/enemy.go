// pkg/entity/enemy.go
package entity

import "github.com/opd-ai/go-hitscan/pkg/physics"

// Default enemy tuning.
const (
	EnemyRadius = 18.0
	EnemyHealth = 1.0
	EnemySpeed  = 60.0 // units per second
)

// Enemy is a homing target. It is alive while Health > 0.
type Enemy struct {
	BaseEntity
	Health    float64
	MaxHealth float64
}

// NewEnemy creates an enemy with a fresh ID and full health.
func NewEnemy(position physics.Vector2D, radius, health float64) *Enemy {
	return &Enemy{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Radius:   radius,
		},
		Health:    health,
		MaxHealth: health,
	}
}

// TakeDamage subtracts amount from Health and reports whether the enemy is
// now dead.
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health -= amount
	return !e.Alive()
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// HealthFraction returns Health relative to MaxHealth, clamped to [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	f := e.Health / e.MaxHealth
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
