// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// Colors
var (
	BackgroundColor = color.RGBA{23, 23, 31, 255}
	playerColor     = color.RGBA{51, 179, 51, 255}
	gunColor        = color.RGBA{255, 255, 51, 255}
	aimRayColor     = color.RGBA{128, 128, 153, 255}
	enemyColor      = color.RGBA{204, 64, 64, 255}
	barBackColor    = color.RGBA{0, 0, 0, 255}
	barFillColor    = color.RGBA{0, 255, 51, 255}
)

const (
	gunLength      = 30.0 // beyond the player's edge
	gunThickness   = 3.0
	aimRayLength   = 2000.0
	healthBarGap   = 4.0
	healthBarWidth = 4.0
)

// SpriteSink receives sprite entities. *common.RenderSystem satisfies it.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

func newSprite(drawable common.Drawable, c color.Color, z float32) *sprite {
	s := &sprite{
		basic:  ecs.NewBasic(),
		render: common.RenderComponent{Drawable: drawable, Color: c},
	}
	s.render.SetZIndex(z)
	return s
}

type enemySprites struct {
	body    *sprite
	barBack *sprite
	barFill *sprite
	seen    bool
}

// EngoRenderer implements engine.Renderer with one ecs entity per drawn
// shape. Enemy sprites are keyed by enemy ID and removed once the enemy no
// longer appears in a frame.
type EngoRenderer struct {
	sink   SpriteSink
	camera *Camera

	player  *sprite
	gun     *sprite
	aimRay  *sprite
	enemies map[uint64]*enemySprites

	aim         physics.Vector2D
	playerState engine.PlayerState
}

// NewEngoRenderer creates a renderer that adds its sprites to sink.
func NewEngoRenderer(sink SpriteSink, camera *Camera) *EngoRenderer {
	r := &EngoRenderer{
		sink:    sink,
		camera:  camera,
		enemies: make(map[uint64]*enemySprites),
		aimRay:  newSprite(common.Rectangle{}, aimRayColor, 0),
		gun:     newSprite(common.Rectangle{}, gunColor, 3),
		player:  newSprite(common.Circle{}, playerColor, 2),
	}
	r.add(r.aimRay)
	r.add(r.gun)
	r.add(r.player)
	return r
}

func (r *EngoRenderer) add(s *sprite) {
	r.sink.Add(&s.basic, &s.render, &s.space)
}

// SetAim sets the aim target used for the gun and aim ray of the next frame.
func (r *EngoRenderer) SetAim(aim physics.Vector2D) {
	r.aim = aim
}

// Clear implements engine.Renderer.
func (r *EngoRenderer) Clear() {
	for _, es := range r.enemies {
		es.seen = false
	}
}

// RenderPlayer implements engine.Renderer.
func (r *EngoRenderer) RenderPlayer(p engine.PlayerState) {
	r.playerState = p
	r.placeCircle(r.player, p.Position, p.Radius)
}

// RenderEnemy implements engine.Renderer.
func (r *EngoRenderer) RenderEnemy(e engine.EnemyState) {
	es, ok := r.enemies[e.ID]
	if !ok {
		es = &enemySprites{
			body:    newSprite(common.Circle{}, enemyColor, 1),
			barBack: newSprite(common.Rectangle{}, barBackColor, 4),
			barFill: newSprite(common.Rectangle{}, barFillColor, 5),
		}
		r.add(es.body)
		r.add(es.barBack)
		r.add(es.barFill)
		r.enemies[e.ID] = es
	}
	es.seen = true

	r.placeCircle(es.body, e.Position, e.Radius)

	// Health bar sits above the enemy, spanning its diameter.
	top := physics.Vector2D{X: e.Position.X - e.Radius, Y: e.Position.Y - e.Radius - healthBarGap - healthBarWidth}
	r.placeRect(es.barBack, top, 2*e.Radius, healthBarWidth)
	r.placeRect(es.barFill, top, 2*e.Radius*e.HealthFraction, healthBarWidth)
	es.barFill.render.Hidden = e.HealthFraction <= 0
}

// Present implements engine.Renderer. It drops sprites for enemies that
// were not drawn this frame and lays out the gun and aim ray.
func (r *EngoRenderer) Present() error {
	for id, es := range r.enemies {
		if es.seen {
			continue
		}
		r.sink.Remove(es.body.basic)
		r.sink.Remove(es.barBack.basic)
		r.sink.Remove(es.barFill.basic)
		delete(r.enemies, id)
	}

	dir := r.aim.Sub(r.playerState.Position).Normalize()
	hidden := dir.IsZero()
	r.gun.render.Hidden = hidden
	r.aimRay.render.Hidden = hidden
	if !hidden {
		r.placeLine(r.gun, r.playerState.Position, dir, r.playerState.Radius+gunLength, gunThickness)
		r.placeLine(r.aimRay, r.playerState.Position, dir, aimRayLength, 1)
	}
	return nil
}

// EnemySprites returns how many enemies currently have sprites.
func (r *EngoRenderer) EnemySprites() int {
	return len(r.enemies)
}

func (r *EngoRenderer) placeCircle(s *sprite, center physics.Vector2D, radius float64) {
	topLeft := physics.Vector2D{X: center.X - radius, Y: center.Y - radius}
	s.space.Position = r.camera.WorldToScreen(topLeft)
	s.space.Width = r.camera.Length(2 * radius)
	s.space.Height = s.space.Width
}

func (r *EngoRenderer) placeRect(s *sprite, topLeft physics.Vector2D, width, height float64) {
	s.space.Position = r.camera.WorldToScreen(topLeft)
	s.space.Width = r.camera.Length(width)
	s.space.Height = r.camera.Length(height)
}

// placeLine lays a thin rectangle from origin along dir. Engo rotates a
// space component about its position, in degrees.
func (r *EngoRenderer) placeLine(s *sprite, origin, dir physics.Vector2D, length, thickness float64) {
	s.space.Position = r.camera.WorldToScreen(origin)
	s.space.Width = r.camera.Length(length)
	s.space.Height = float32(thickness)
	s.space.Rotation = float32(dir.Angle() * 180 / math.Pi)
}
