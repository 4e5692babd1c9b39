package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// or auto-repeat. Terminals never report key releases.
const DefaultHoldWindow = 300 * time.Millisecond

type control int

const (
	controlUp control = iota
	controlDown
	controlLeft
	controlRight
	controlFire
	controlCount
)

// TerminalInput turns tcell key and mouse events into engine.Input.
//
// WASD or the arrow keys move, the mouse aims, and mouse button 1 or the
// space bar fires. Escape, q and Ctrl-C request a quit.
type TerminalInput struct {
	HoldWindow time.Duration

	lastPress [controlCount]time.Time
	mouseX    int
	mouseY    int
	hasMouse  bool
	mouseFire bool
	quit      bool
}

// NewTerminalInput creates an input tracker with DefaultHoldWindow.
func NewTerminalInput() *TerminalInput {
	return &TerminalInput{HoldWindow: DefaultHoldWindow}
}

// HandleEvent dispatches a tcell event received at now.
func (ti *TerminalInput) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		ti.HandleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		ti.HandleMouse(x, y, ev.Buttons())
	}
}

// HandleKey records a key press or repeat.
func (ti *TerminalInput) HandleKey(key tcell.Key, ch rune, now time.Time) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ti.quit = true
	case tcell.KeyUp:
		ti.lastPress[controlUp] = now
	case tcell.KeyDown:
		ti.lastPress[controlDown] = now
	case tcell.KeyLeft:
		ti.lastPress[controlLeft] = now
	case tcell.KeyRight:
		ti.lastPress[controlRight] = now
	case tcell.KeyRune:
		ti.handleRune(ch, now)
	}
}

func (ti *TerminalInput) handleRune(ch rune, now time.Time) {
	switch ch {
	case 'w', 'W':
		ti.lastPress[controlUp] = now
	case 's', 'S':
		ti.lastPress[controlDown] = now
	case 'a', 'A':
		ti.lastPress[controlLeft] = now
	case 'd', 'D':
		ti.lastPress[controlRight] = now
	case ' ':
		ti.lastPress[controlFire] = now
	case 'q', 'Q':
		ti.quit = true
	}
}

// HandleMouse records the cursor position in screen cells and whether the
// primary button is down. tcell reports releases as an event with no buttons.
func (ti *TerminalInput) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	ti.mouseX, ti.mouseY = x, y
	ti.hasMouse = true
	ti.mouseFire = buttons&tcell.Button1 != 0
}

// QuitRequested reports whether a quit key has been seen.
func (ti *TerminalInput) QuitRequested() bool {
	return ti.quit
}

func (ti *TerminalInput) held(c control, now time.Time) bool {
	last := ti.lastPress[c]
	return !last.IsZero() && now.Sub(last) <= ti.HoldWindow
}

// Sample builds the input for a frame starting at now. The cursor is mapped
// into arena coordinates through vp; before any mouse event the aim points
// at the top center of the arena.
func (ti *TerminalInput) Sample(now time.Time, vp Viewport) engine.Input {
	in := engine.Input{
		Up:    ti.held(controlUp, now),
		Down:  ti.held(controlDown, now),
		Left:  ti.held(controlLeft, now),
		Right: ti.held(controlRight, now),
		Fire:  ti.mouseFire || ti.held(controlFire, now),
	}

	if ti.hasMouse {
		// Screen cells are offset by the border.
		in.Aim = vp.ToWorld(ti.mouseX-1, ti.mouseY-1)
	} else {
		in.Aim = physics.Vector2D{X: vp.ArenaWidth / 2, Y: 0}
	}
	return in
}
