// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Radius   float64
}

// GetCollider returns the entity's collision shape at its current position
func (e *BaseEntity) GetCollider() physics.Circle {
	return physics.Circle{
		Center: e.Position,
		Radius: e.Radius,
	}
}

// MoveToward moves the entity distance units toward target. An entity already
// sitting on target stays put because the direction normalizes to zero.
func (e *BaseEntity) MoveToward(target physics.Vector2D, distance float64) {
	dir := target.Sub(e.Position).Normalize()
	e.Position = e.Position.Add(dir.Scale(distance))
}

var nextID atomic.Uint64

// GenerateID returns a process-wide unique entity ID, starting at 1.
func GenerateID() ID {
	return ID(nextID.Add(1))
}
