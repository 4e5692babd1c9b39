// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// Camera frames the whole arena in the game canvas. The arena is scaled
// uniformly to fit and centered, so a canvas with a different aspect ratio
// gets bars on two sides.
type Camera struct {
	zoom    float32
	offsetX float32
	offsetY float32
}

// NewCamera fits an arena of the given size into a canvas of the given size.
func NewCamera(arenaWidth, arenaHeight float64, canvasWidth, canvasHeight float32) *Camera {
	cam := &Camera{zoom: 1}
	if arenaWidth <= 0 || arenaHeight <= 0 || canvasWidth <= 0 || canvasHeight <= 0 {
		return cam
	}

	zoomX := canvasWidth / float32(arenaWidth)
	zoomY := canvasHeight / float32(arenaHeight)
	cam.zoom = min(zoomX, zoomY)
	cam.offsetX = (canvasWidth - float32(arenaWidth)*cam.zoom) / 2
	cam.offsetY = (canvasHeight - float32(arenaHeight)*cam.zoom) / 2
	return cam
}

// Zoom returns canvas units per arena unit.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// WorldToScreen converts arena coordinates to canvas coordinates.
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X)*c.zoom + c.offsetX,
		Y: float32(worldPos.Y)*c.zoom + c.offsetY,
	}
}

// ScreenToWorld converts canvas coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(x, y float32) physics.Vector2D {
	return physics.Vector2D{
		X: float64((x - c.offsetX) / c.zoom),
		Y: float64((y - c.offsetY) / c.zoom),
	}
}

// Length scales an arena distance to the canvas.
func (c *Camera) Length(d float64) float32 {
	return float32(d) * c.zoom
}
