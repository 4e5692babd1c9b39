// pkg/engine/renderer.go
package engine

// Renderer draws one frame from a snapshot.
type Renderer interface {
	Clear()
	RenderPlayer(p PlayerState)
	RenderEnemy(e EnemyState)
	Present() error
}

// Draw walks state through r: clear, player, each enemy in order, present.
func Draw(state GameState, r Renderer) error {
	r.Clear()
	r.RenderPlayer(state.Player)
	for _, e := range state.Enemies {
		r.RenderEnemy(e)
	}
	return r.Present()
}
