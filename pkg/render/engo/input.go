// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-hitscan/pkg/engine"
)

// Button names registered by SetupInputBindings.
const (
	ButtonUp    = "up"
	ButtonDown  = "down"
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonFire  = "fire"
	ButtonQuit  = "quit"
)

// System priorities. Higher runs first; engo's render system runs last.
const (
	InputPriority      = 20
	SimulationPriority = 10
)

// MouseState is one frame's mouse reading.
type MouseState struct {
	X, Y   float32
	Action engo.Action
	Button engo.MouseButton
}

// InputSource reads raw input. engoInput reads engo's global input manager.
type InputSource interface {
	ButtonDown(name string) bool
	Mouse() MouseState
}

type engoInput struct{}

func (engoInput) ButtonDown(name string) bool {
	return engo.Input.Button(name).Down()
}

func (engoInput) Mouse() MouseState {
	m := engo.Input.Mouse
	return MouseState{X: m.X, Y: m.Y, Action: m.Action, Button: m.Button}
}

// InputSystem samples keyboard and mouse once per frame into an engine.Input.
//
// Engo reports mouse buttons as press and release actions, so the left
// button's held state is tracked across frames.
type InputSystem struct {
	source InputSource
	camera *Camera

	current   engine.Input
	mouseHeld bool
	quit      bool
}

// NewInputSystemWithSource creates an input system reading from source.
func NewInputSystemWithSource(source InputSource, camera *Camera) *InputSystem {
	return &InputSystem{source: source, camera: camera}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs input sampling before the simulation.
func (is *InputSystem) Priority() int { return InputPriority }

// Update samples the current input state.
func (is *InputSystem) Update(dt float32) {
	mouse := is.source.Mouse()
	if mouse.Button == engo.MouseButtonLeft {
		switch mouse.Action {
		case engo.Press:
			is.mouseHeld = true
		case engo.Release:
			is.mouseHeld = false
		}
	}

	is.current = engine.Input{
		Up:    is.source.ButtonDown(ButtonUp),
		Down:  is.source.ButtonDown(ButtonDown),
		Left:  is.source.ButtonDown(ButtonLeft),
		Right: is.source.ButtonDown(ButtonRight),
		Fire:  is.mouseHeld || is.source.ButtonDown(ButtonFire),
		Aim:   is.camera.ScreenToWorld(mouse.X, mouse.Y),
	}
	is.quit = is.source.ButtonDown(ButtonQuit)
}

// Current returns the input sampled by the last Update.
func (is *InputSystem) Current() engine.Input {
	return is.current
}

// QuitRequested reports whether the quit key was down at the last Update.
func (is *InputSystem) QuitRequested() bool {
	return is.quit
}

// SetupInputBindings registers the movement, fire and quit buttons.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonUp, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonDown, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
