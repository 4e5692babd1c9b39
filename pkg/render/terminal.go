package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-hitscan/pkg/engine"
)

// CellWriter is the part of tcell.Screen the terminal renderer draws with.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Glyphs used by TerminalRenderer.
const (
	PlayerGlyph       = '@'
	HealthyEnemyGlyph = 'O'
	WoundedEnemyGlyph = 'o'
	woundedThreshold  = 0.5
	borderCorner      = '+'
	borderHorizontal  = '-'
	borderVertical    = '|'
)

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type cell struct {
	glyph rune
	style tcell.Style
}

// TerminalRenderer draws the arena as ASCII cells on a tcell screen, scaled to
// whatever size the terminal currently has.
type TerminalRenderer struct {
	screen      CellWriter
	arenaWidth  float64
	arenaHeight float64
	viewport    Viewport
	buffer      [][]cell
	status      string
}

// NewTerminalRenderer creates a renderer for an arena of the given size. The
// viewport is sized to the screen right away so input can map the mouse
// before the first frame is drawn.
func NewTerminalRenderer(screen CellWriter, arenaWidth, arenaHeight float64) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:      screen,
		arenaWidth:  arenaWidth,
		arenaHeight: arenaHeight,
		viewport:    NewViewport(w, h, arenaWidth, arenaHeight),
	}
}

// Viewport returns the mapping used for the current frame.
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// SetStatus sets a line of text drawn into the top border.
func (r *TerminalRenderer) SetStatus(status string) {
	r.status = status
}

// Clear implements engine.Renderer. It picks up terminal resizes.
func (r *TerminalRenderer) Clear() {
	w, h := r.screen.Size()
	r.viewport = NewViewport(w, h, r.arenaWidth, r.arenaHeight)

	if len(r.buffer) != r.viewport.Rows || (len(r.buffer) > 0 && len(r.buffer[0]) != r.viewport.Cols) {
		r.buffer = make([][]cell, r.viewport.Rows)
		for y := range r.buffer {
			r.buffer[y] = make([]cell, r.viewport.Cols)
		}
	}
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = cell{glyph: ' ', style: tcell.StyleDefault}
		}
	}
}

func (r *TerminalRenderer) plot(col, row int, glyph rune, style tcell.Style) {
	r.buffer[row][col] = cell{glyph: glyph, style: style}
}

// RenderPlayer implements engine.Renderer.
func (r *TerminalRenderer) RenderPlayer(p engine.PlayerState) {
	if col, row, ok := r.viewport.ToCell(p.Position); ok {
		r.plot(col, row, PlayerGlyph, playerStyle)
	}
}

// RenderEnemy implements engine.Renderer.
func (r *TerminalRenderer) RenderEnemy(e engine.EnemyState) {
	col, row, ok := r.viewport.ToCell(e.Position)
	if !ok {
		return
	}
	glyph := HealthyEnemyGlyph
	if e.HealthFraction <= woundedThreshold {
		glyph = WoundedEnemyGlyph
	}
	r.plot(col, row, glyph, enemyStyle)
}

// Present implements engine.Renderer. It draws the border, the status line
// and the buffer, then shows the screen.
func (r *TerminalRenderer) Present() error {
	r.screen.Clear()
	r.drawBorder()

	for y, line := range r.buffer {
		for x, c := range line {
			r.screen.SetContent(x+1, y+1, c.glyph, nil, c.style)
		}
	}

	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) drawBorder() {
	right, bottom := r.viewport.Cols+1, r.viewport.Rows+1

	for x := 0; x <= right; x++ {
		glyph := borderHorizontal
		if x == 0 || x == right {
			glyph = borderCorner
		}
		r.screen.SetContent(x, 0, glyph, nil, borderStyle)
		r.screen.SetContent(x, bottom, glyph, nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, borderVertical, nil, borderStyle)
		r.screen.SetContent(right, y, borderVertical, nil, borderStyle)
	}

	// Status text sits inside the top border and is truncated to fit.
	x := 2
	for _, ch := range r.status {
		if x >= right-1 {
			break
		}
		r.screen.SetContent(x, 0, ch, nil, statusStyle)
		x++
	}
}
