// Example demonstrates arrow-key focus navigation over a ragged grid
// of boxes, including a decorative sidebar that spans several rows.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Arrow keys (or a gamepad d-pad) move the focus; Enter or Space taps
// the focused box. Moving off an edge wraps around to the far side.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/navgrid"
	"github.com/go-theft-auto/navgrid/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "navgrid example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// box is a focusable demo widget: a colored rectangle that brightens
// while focused.
type box struct {
	name    string
	rect    navgrid.Rect
	color   [4]float32
	focused bool
	decor   bool // decorative: occupies slots but is passed through
}

func (b *box) GainFocus()           { b.focused = true }
func (b *box) LoseFocus()           { b.focused = false }
func (b *box) Inactive() bool       { return b.decor }
func (b *box) Bounds() navgrid.Rect { return b.rect }

// tapSink resolves synthesized taps back to the box under the point.
type tapSink struct {
	boxes []*box
}

func (t *tapSink) TapAt(p navgrid.Vec2) {
	for _, b := range t.boxes {
		if b.rect.Contains(p) {
			fmt.Printf("activated %s\n", b.name)
			return
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewInputAdapter(window)

	// Demo layout: a menu row on top, then a tall decorative sidebar
	// next to two rows of settings buttons. The sidebar holds two grid
	// slots, so a single down-press walks through it.
	play := &box{name: "Play", rect: navgrid.Rect{X: 40, Y: 40, W: 220, H: 90}, color: [4]float32{0.20, 0.45, 0.25, 1}}
	options := &box{name: "Options", rect: navgrid.Rect{X: 290, Y: 40, W: 220, H: 90}, color: [4]float32{0.20, 0.35, 0.50, 1}}
	quit := &box{name: "Quit", rect: navgrid.Rect{X: 540, Y: 40, W: 220, H: 90}, color: [4]float32{0.50, 0.25, 0.20, 1}}
	sidebar := &box{name: "Sidebar", rect: navgrid.Rect{X: 40, Y: 160, W: 220, H: 330}, color: [4]float32{0.25, 0.25, 0.28, 1}, decor: true}
	audio := &box{name: "Audio", rect: navgrid.Rect{X: 290, Y: 160, W: 220, H: 150}, color: [4]float32{0.35, 0.30, 0.45, 1}}
	video := &box{name: "Video", rect: navgrid.Rect{X: 540, Y: 160, W: 220, H: 150}, color: [4]float32{0.40, 0.40, 0.25, 1}}
	back := &box{name: "Back", rect: navgrid.Rect{X: 290, Y: 340, W: 220, H: 150}, color: [4]float32{0.30, 0.30, 0.30, 1}}

	boxes := []*box{play, options, quit, sidebar, audio, video, back}

	grid := navgrid.GridFromRows([][]navgrid.Focusable{
		{play, options, quit},
		{sidebar, audio, video},
		{sidebar, back},
	})

	device := opengl.NewDevice(false)
	nav := navgrid.NewNavigator(grid,
		navgrid.WithDevice(device),
		navgrid.WithRepainter(renderer),
		navgrid.WithGestureSink(&tapSink{boxes: boxes}),
	)
	nav.FocusInitial()

	bindings := navgrid.NewBindings(nav, device)

	lastTime := glfw.GetTime()

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		input := inputAdapter.Update(dt)
		bindings.HandleInput(input)
		if input.KeyPressed(navgrid.KeyEscape) {
			window.SetShouldClose(true)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		for _, b := range boxes {
			c := b.color
			if b.focused {
				c = [4]float32{c[0] + 0.15, c[1] + 0.15, c[2] + 0.15, 1}
			}
			renderer.DrawRect(b.rect, c)
		}
		if current := nav.Current(); current != nil {
			renderer.DrawRectOutline(current.Bounds(), [4]float32{0.35, 0.85, 0.95, 1}, 3)
		}
		renderer.ConsumeDirty()

		window.SwapBuffers()
	}

	return nil
}
