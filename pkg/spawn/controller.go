// Package spawn keeps the enemy population topped up.
package spawn

import (
	"github.com/opd-ai/go-hitscan/pkg/entity"
	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// Default population policy.
const (
	DefaultTarget        = 6
	DefaultChancePercent = 10
)

// Rand is the random source the controller draws from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Controller trickle-spawns enemies while the population is under Target.
// At most one enemy is added per Maintain call, with ChancePercent odds.
type Controller struct {
	Target        int
	ChancePercent int
	EnemyRadius   float64
	EnemyHealth   float64
}

// NewController creates a controller with the default policy and enemy tuning.
func NewController() *Controller {
	return &Controller{
		Target:        DefaultTarget,
		ChancePercent: DefaultChancePercent,
		EnemyRadius:   entity.EnemyRadius,
		EnemyHealth:   entity.EnemyHealth,
	}
}

// Maintain appends at most one new enemy to enemies when the live count is
// below Target and the roll succeeds. It returns the (possibly grown) slice
// and the spawned enemy, or nil if nothing spawned.
func (c *Controller) Maintain(enemies []*entity.Enemy, width, height int, rng Rand) ([]*entity.Enemy, *entity.Enemy) {
	if len(enemies) >= c.Target {
		return enemies, nil
	}
	if rng.IntN(100) >= c.ChancePercent {
		return enemies, nil
	}
	enemy := c.spawnOne(width, height, rng)
	return append(enemies, enemy), enemy
}

// Fill unconditionally appends n enemies, used for the opening wave.
func (c *Controller) Fill(enemies []*entity.Enemy, n, width, height int, rng Rand) []*entity.Enemy {
	for i := 0; i < n; i++ {
		enemies = append(enemies, c.spawnOne(width, height, rng))
	}
	return enemies
}

// spawnOne places an enemy at a uniformly random integer point in
// [0, width) x [0, height).
func (c *Controller) spawnOne(width, height int, rng Rand) *entity.Enemy {
	pos := physics.Vector2D{
		X: float64(rng.IntN(width)),
		Y: float64(rng.IntN(height)),
	}
	return entity.NewEnemy(pos, c.EnemyRadius, c.EnemyHealth)
}
