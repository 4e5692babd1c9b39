// pkg/physics/collision.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Ray is a half-line Origin + t*Direction for t >= 0.
type Ray struct {
	Origin    Vector2D
	Direction Vector2D
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vector2D {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectCircle is RayCircleIntersect for this ray.
func (r Ray) IntersectCircle(c Circle) (float64, bool) {
	return RayCircleIntersect(r.Origin, r.Direction, c.Center, c.Radius)
}

// RayCircleIntersect returns the smallest non-negative t at which
// origin + t*direction meets the circle, or false if the ray misses or the
// circle lies entirely behind the origin.
//
// When the origin is inside the circle the near root is negative, so the
// exit point is returned rather than the entry point.
//
// A zero direction never hits.
func RayCircleIntersect(origin, direction, center Vector2D, radius float64) (float64, bool) {
	f := origin.Sub(center)
	a := direction.Dot(direction)
	if a == 0 {
		return 0, false
	}
	b := 2 * direction.Dot(f)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	disc = math.Sqrt(disc)

	t1 := (-b - disc) / (2 * a)
	t2 := (-b + disc) / (2 * a)
	switch {
	case t1 >= 0:
		return t1, true
	case t2 >= 0:
		return t2, true
	default:
		return 0, false
	}
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min Vector2D
	Max Vector2D
}

// NewArena returns the rectangle [0, width] x [0, height].
func NewArena(width, height float64) Rect {
	return Rect{Max: Vector2D{X: width, Y: height}}
}

// Width of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2D {
	return Vector2D{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Contains reports whether point lies inside the rectangle, edges included.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Min.X && point.X <= r.Max.X &&
		point.Y >= r.Min.Y && point.Y <= r.Max.Y
}

// Clamp pulls point onto the rectangle on both axes independently.
func (r Rect) Clamp(point Vector2D) Vector2D {
	return Vector2D{
		X: clamp(point.X, r.Min.X, r.Max.X),
		Y: clamp(point.Y, r.Min.Y, r.Max.Y),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
