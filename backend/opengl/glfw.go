package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/navgrid"
)

// Device reports input capabilities of a GLFW host. Desktop hosts
// always expose a directional pad (the arrow keys, or a connected
// gamepad's d-pad). Controller-first builds report few physical keys
// so that bindings leave the left key free for "back".
type Device struct {
	controllerOnly bool
}

// NewDevice creates a capability probe. controllerOnly selects the
// few-keys profile.
func NewDevice(controllerOnly bool) *Device {
	return &Device{controllerOnly: controllerOnly}
}

// HasDirectionalPad implements navgrid.Device.
func (d *Device) HasDirectionalPad() bool {
	return true
}

// HasFewKeys implements navgrid.Device.
func (d *Device) HasFewKeys() bool {
	return d.controllerOnly
}

// GamepadPresent reports whether a gamepad occupies the first joystick
// slot.
func GamepadPresent() bool {
	return glfw.Joystick1.IsGamepad()
}

// InputAdapter merges GLFW keyboard events and gamepad d-pad state
// into a navgrid.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *navgrid.InputState

	// Keyboard and gamepad tracked separately so a held arrow key is
	// not released by an idle d-pad (and vice versa).
	kbDown  [navgrid.KeyCount]bool
	padDown [navgrid.KeyCount]bool
}

// NewInputAdapter creates an input adapter bound to the window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window: window,
		input:  navgrid.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	return a
}

// Update refreshes the input state for a new frame. Call it after
// glfw.PollEvents with the frame's delta time.
func (a *InputAdapter) Update(dt float32) *navgrid.InputState {
	a.input.Reset()
	a.pollGamepad()
	for k := navgrid.Key(0); k < navgrid.KeyCount; k++ {
		a.input.SetKey(k, a.kbDown[k] || a.padDown[k])
	}
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// Input returns the current input state.
func (a *InputAdapter) Input() *navgrid.InputState {
	return a.input
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	navKey := glfwKeyToNavKey(key)
	if navKey == navgrid.KeyNone {
		return
	}

	// glfw.Repeat is ignored: repeat timing belongs to InputState.
	switch action {
	case glfw.Press:
		a.kbDown[navKey] = true
	case glfw.Release:
		a.kbDown[navKey] = false
	}
}

// pollGamepad maps the first gamepad's d-pad and confirm button onto
// the navigation keys.
func (a *InputAdapter) pollGamepad() {
	for k := range a.padDown {
		a.padDown[k] = false
	}
	if !glfw.Joystick1.IsGamepad() {
		return
	}
	state := glfw.Joystick1.GetGamepadState()
	if state == nil {
		return
	}
	a.padDown[navgrid.KeyUp] = state.Buttons[glfw.ButtonDpadUp] == glfw.Press
	a.padDown[navgrid.KeyDown] = state.Buttons[glfw.ButtonDpadDown] == glfw.Press
	a.padDown[navgrid.KeyLeft] = state.Buttons[glfw.ButtonDpadLeft] == glfw.Press
	a.padDown[navgrid.KeyRight] = state.Buttons[glfw.ButtonDpadRight] == glfw.Press
	a.padDown[navgrid.KeyEnter] = state.Buttons[glfw.ButtonA] == glfw.Press
}

// glfwKeyToNavKey maps GLFW keys to navigation keys.
func glfwKeyToNavKey(key glfw.Key) navgrid.Key {
	switch key {
	case glfw.KeyTab:
		return navgrid.KeyTab
	case glfw.KeyLeft:
		return navgrid.KeyLeft
	case glfw.KeyRight:
		return navgrid.KeyRight
	case glfw.KeyUp:
		return navgrid.KeyUp
	case glfw.KeyDown:
		return navgrid.KeyDown
	case glfw.KeyHome:
		return navgrid.KeyHome
	case glfw.KeyEnd:
		return navgrid.KeyEnd
	case glfw.KeySpace:
		return navgrid.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return navgrid.KeyEnter
	case glfw.KeyEscape:
		return navgrid.KeyEscape
	default:
		return navgrid.KeyNone
	}
}
