// pkg/render/viewport.go
package render

import "github.com/opd-ai/go-hitscan/pkg/physics"

// Viewport maps the arena onto a Cols x Rows grid of terminal cells. The
// grid excludes the one-cell border, so interior cell (col, row) is drawn at
// screen position (col+1, row+1).
type Viewport struct {
	Cols, Rows  int
	ArenaWidth  float64
	ArenaHeight float64
}

// NewViewport fits the arena into a screen of the given size.
func NewViewport(screenWidth, screenHeight int, arenaWidth, arenaHeight float64) Viewport {
	return Viewport{
		Cols:        max(0, screenWidth-2),
		Rows:        max(0, screenHeight-2),
		ArenaWidth:  arenaWidth,
		ArenaHeight: arenaHeight,
	}
}

// Empty reports whether there is no room to draw.
func (v Viewport) Empty() bool {
	return v.Cols <= 0 || v.Rows <= 0 || v.ArenaWidth <= 0 || v.ArenaHeight <= 0
}

// ToCell returns the interior cell containing p. Points on the far arena
// edge land in the last cell. ok is false for points outside the arena or
// an empty viewport.
func (v Viewport) ToCell(p physics.Vector2D) (col, row int, ok bool) {
	if v.Empty() || !p.IsFinite() {
		return 0, 0, false
	}
	if p.X < 0 || p.Y < 0 || p.X > v.ArenaWidth || p.Y > v.ArenaHeight {
		return 0, 0, false
	}
	col = min(int(p.X/v.ArenaWidth*float64(v.Cols)), v.Cols-1)
	row = min(int(p.Y/v.ArenaHeight*float64(v.Rows)), v.Rows-1)
	return col, row, true
}

// ToWorld returns the arena point at the center of interior cell (col, row).
// Cells outside the grid are clamped onto it.
func (v Viewport) ToWorld(col, row int) physics.Vector2D {
	if v.Empty() {
		return physics.Vector2D{}
	}
	col = min(max(col, 0), v.Cols-1)
	row = min(max(row, 0), v.Rows-1)
	return physics.Vector2D{
		X: (float64(col) + 0.5) * v.ArenaWidth / float64(v.Cols),
		Y: (float64(row) + 0.5) * v.ArenaHeight / float64(v.Rows),
	}
}
