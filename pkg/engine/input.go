// pkg/engine/input.go
package engine

import "github.com/opd-ai/go-hitscan/pkg/physics"

// Input is one frame's worth of player intent, sampled by the host.
type Input struct {
	Up, Down, Left, Right bool
	Aim                   physics.Vector2D // aim target in arena coordinates
	Fire                  bool
}

// Intent returns the raw movement direction. Each axis is -1, 0 or +1;
// opposite keys cancel. The result is not normalized.
func (in Input) Intent() physics.Vector2D {
	var v physics.Vector2D
	if in.Up {
		v.Y--
	}
	if in.Down {
		v.Y++
	}
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	return v
}
