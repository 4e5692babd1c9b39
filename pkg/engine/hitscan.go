// pkg/engine/hitscan.go
package engine

import (
	"github.com/opd-ai/go-hitscan/pkg/entity"
	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// TraceShot casts a ray from origin along direction and returns the enemy
// with the smallest intersection distance, or nil if none is hit.
//
// The search starts at maxRange+1, so an enemy just past maxRange can still
// be hit. On equal distances the enemy earlier in the slice wins.
func TraceShot(origin, direction physics.Vector2D, enemies []*entity.Enemy, maxRange float64) (*entity.Enemy, float64) {
	ray := physics.Ray{Origin: origin, Direction: direction}
	best := maxRange + 1
	var target *entity.Enemy

	for _, enemy := range enemies {
		t, ok := ray.IntersectCircle(enemy.GetCollider())
		if ok && t < best {
			best = t
			target = enemy
		}
	}

	if target == nil {
		return nil, 0
	}
	return target, best
}
