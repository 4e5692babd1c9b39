// pkg/entity/entity_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-hitscan/pkg/physics"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if id == 0 {
			t.Fatal("GenerateID() returned zero")
		}
		if seen[id] {
			t.Fatalf("GenerateID() returned duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestBaseEntity_GetCollider(t *testing.T) {
	e := &BaseEntity{ID: 7, Position: physics.Vector2D{X: 3, Y: 4}, Radius: 9}

	c := e.GetCollider()
	if c.Center != e.Position || c.Radius != 9 {
		t.Errorf("GetCollider() = %+v, expected center %v radius 9", c, e.Position)
	}

	e.Position = physics.Vector2D{X: -1, Y: 2}
	if c := e.GetCollider(); c.Center != e.Position {
		t.Errorf("GetCollider() center = %v after move, expected %v", c.Center, e.Position)
	}
}

func TestBaseEntity_MoveToward(t *testing.T) {
	tests := []struct {
		name     string
		start    physics.Vector2D
		target   physics.Vector2D
		distance float64
		expected physics.Vector2D
	}{
		{
			name:     "moves_along_axis",
			start:    physics.Vector2D{X: 0, Y: 0},
			target:   physics.Vector2D{X: 100, Y: 0},
			distance: 6,
			expected: physics.Vector2D{X: 6, Y: 0},
		},
		{
			name:     "coincident_does_not_move",
			start:    physics.Vector2D{X: 400, Y: 300},
			target:   physics.Vector2D{X: 400, Y: 300},
			distance: 6,
			expected: physics.Vector2D{X: 400, Y: 300},
		},
		{
			name:     "diagonal",
			start:    physics.Vector2D{X: 0, Y: 0},
			target:   physics.Vector2D{X: 30, Y: 40},
			distance: 5,
			expected: physics.Vector2D{X: 3, Y: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEntity{Position: tt.start}
			e.MoveToward(tt.target, tt.distance)
			if math.Abs(e.Position.X-tt.expected.X) > 1e-9 || math.Abs(e.Position.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("MoveToward() position = %v, expected %v", e.Position, tt.expected)
			}
		})
	}
}

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer(physics.Vector2D{X: 400, Y: 300})

	if p.Radius != PlayerRadius {
		t.Errorf("Radius = %v, expected %v", p.Radius, PlayerRadius)
	}
	if p.Speed != PlayerSpeed {
		t.Errorf("Speed = %v, expected %v", p.Speed, PlayerSpeed)
	}
	if p.ID == 0 {
		t.Error("expected player to have an ID")
	}
}

func TestPlayer_Move(t *testing.T) {
	arena := physics.NewArena(800, 600)

	tests := []struct {
		name     string
		start    physics.Vector2D
		intent   physics.Vector2D
		dt       float64
		expected physics.Vector2D
	}{
		{
			name:     "idle",
			start:    physics.Vector2D{X: 400, Y: 300},
			intent:   physics.Vector2D{},
			dt:       0.5,
			expected: physics.Vector2D{X: 400, Y: 300},
		},
		{
			name:     "right_half_second",
			start:    physics.Vector2D{X: 400, Y: 300},
			intent:   physics.Vector2D{X: 1},
			dt:       0.5,
			expected: physics.Vector2D{X: 540, Y: 300},
		},
		{
			name:     "diagonal_is_normalized",
			start:    physics.Vector2D{X: 400, Y: 300},
			intent:   physics.Vector2D{X: 1, Y: 1},
			dt:       1,
			expected: physics.Vector2D{X: 400 + 280/math.Sqrt2, Y: 300 + 280/math.Sqrt2},
		},
		{
			name:     "clamped_left",
			start:    physics.Vector2D{X: 10, Y: 300},
			intent:   physics.Vector2D{X: -1},
			dt:       1,
			expected: physics.Vector2D{X: 0, Y: 300},
		},
		{
			name:     "clamped_bottom_right",
			start:    physics.Vector2D{X: 790, Y: 595},
			intent:   physics.Vector2D{X: 1, Y: 1},
			dt:       1,
			expected: physics.Vector2D{X: 800, Y: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.start)
			p.Move(tt.intent, tt.dt, arena)
			if math.Abs(p.Position.X-tt.expected.X) > 1e-9 || math.Abs(p.Position.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Move() position = %v, expected %v", p.Position, tt.expected)
			}
		})
	}
}

func TestEnemy_TakeDamage(t *testing.T) {
	e := NewEnemy(physics.Vector2D{X: 1, Y: 2}, EnemyRadius, 2)

	if dead := e.TakeDamage(1); dead {
		t.Fatal("enemy with 2 health should survive one point of damage")
	}
	if got := e.HealthFraction(); got != 0.5 {
		t.Errorf("HealthFraction() = %v, expected 0.5", got)
	}
	if dead := e.TakeDamage(1); !dead {
		t.Fatal("expected enemy to die at zero health")
	}
	if e.Alive() {
		t.Error("Alive() = true at zero health")
	}
}

func TestEnemy_HealthFraction_Clamped(t *testing.T) {
	tests := []struct {
		name      string
		health    float64
		maxHealth float64
		expected  float64
	}{
		{"full", 1, 1, 1},
		{"overkill", -2, 1, 0},
		{"overheal", 3, 1, 1},
		{"no_max", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Enemy{Health: tt.health, MaxHealth: tt.maxHealth}
			if got := e.HealthFraction(); got != tt.expected {
				t.Errorf("HealthFraction() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
