// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add_mixed_signs", Vector2D{X: 5, Y: -3}.Add(Vector2D{X: -2, Y: 7}), Vector2D{X: 3, Y: 4}},
		{"add_zero", Vector2D{}.Add(Vector2D{X: 5, Y: -3}), Vector2D{X: 5, Y: -3}},
		{"sub_negative_result", Vector2D{X: 2, Y: 3}.Sub(Vector2D{X: 5, Y: 7}), Vector2D{X: -3, Y: -4}},
		{"sub_same", Vector2D{X: 4, Y: 6}.Sub(Vector2D{X: 4, Y: 6}), Vector2D{}},
		{"scale_negative", Vector2D{X: 3, Y: 4}.Scale(-2), Vector2D{X: -6, Y: -8}},
		{"scale_fraction", Vector2D{X: 4, Y: 8}.Scale(0.5), Vector2D{X: 2, Y: 4}},
		{"scale_zero", Vector2D{X: 3, Y: 4}.Scale(0), Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"zero", Vector2D{}, 0},
		{"axis", Vector2D{X: 0, Y: -7}, 7},
		{"pythagorean", Vector2D{X: 3, Y: 4}, 5},
		{"negative", Vector2D{X: -6, Y: -8}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.Length(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Length() = %v, expected %v", got, tt.expected)
			}
			if got := tt.vector.LengthSquared(); math.Abs(got-tt.expected*tt.expected) > 1e-9 {
				t.Errorf("LengthSquared() = %v, expected %v", got, tt.expected*tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	t.Run("regular_vector", func(t *testing.T) {
		result := Vector2D{X: 3, Y: 4}.Normalize()
		if math.Abs(result.Length()-1) > 1e-9 {
			t.Errorf("Normalized vector length = %v, expected 1", result.Length())
		}
		if math.Abs(result.X-0.6) > 1e-9 || math.Abs(result.Y-0.8) > 1e-9 {
			t.Errorf("Normalize() = %v, expected (0.6, 0.8)", result)
		}
	})

	t.Run("diagonal_input", func(t *testing.T) {
		result := Vector2D{X: -1, Y: 1}.Normalize()
		want := 1 / math.Sqrt2
		if math.Abs(result.X+want) > 1e-9 || math.Abs(result.Y-want) > 1e-9 {
			t.Errorf("Normalize() = %v, expected (%v, %v)", result, -want, want)
		}
	})
}

func TestVector2D_NormalizeZeroVector_ReturnsZeroVector(t *testing.T) {
	normalized := Vector2D{}.Normalize()

	if !normalized.IsZero() {
		t.Errorf("Normalize() on zero vector = %v, expected zero vector", normalized)
	}
	if math.IsNaN(normalized.X) || math.IsNaN(normalized.Y) {
		t.Error("Normalize() on zero vector produced NaN")
	}
}

func TestVector2D_Distance(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{"same_point", Vector2D{X: 3, Y: 4}, Vector2D{X: 3, Y: 4}, 0},
		{"pythagorean_distance", Vector2D{}, Vector2D{X: 3, Y: 4}, 5},
		{"negative_coordinates", Vector2D{X: -1, Y: -1}, Vector2D{X: 2, Y: 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Distance(tt.v2); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Distance() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Dot(t *testing.T) {
	if got := (Vector2D{X: 1, Y: 0}).Dot(Vector2D{X: 0, Y: 1}); got != 0 {
		t.Errorf("perpendicular Dot() = %v, expected 0", got)
	}
	if got := (Vector2D{X: 2, Y: 3}).Dot(Vector2D{X: 4, Y: -5}); got != -7 {
		t.Errorf("Dot() = %v, expected -7", got)
	}
}

func TestVector2D_Angle(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"positive_x_axis", Vector2D{X: 1, Y: 0}, 0},
		{"positive_y_axis", Vector2D{X: 0, Y: 1}, math.Pi / 2},
		{"negative_y_axis", Vector2D{X: 0, Y: -1}, -math.Pi / 2},
		{"135_degrees", Vector2D{X: -1, Y: 1}, 3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.Angle(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Angle() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected bool
	}{
		{"finite", Vector2D{X: 1e300, Y: -3}, true},
		{"nan_x", Vector2D{X: math.NaN(), Y: 0}, false},
		{"inf_y", Vector2D{X: 0, Y: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.IsFinite(); got != tt.expected {
				t.Errorf("IsFinite() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func BenchmarkVector2D_Normalize(b *testing.B) {
	v := Vector2D{X: 3, Y: 4}

	for i := 0; i < b.N; i++ {
		_ = v.Normalize()
	}
}
