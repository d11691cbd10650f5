// Package opengl provides a GLFW/OpenGL 4.1 host layer for navgrid:
// an input adapter, a device capability probe, and a minimal flat-rect
// renderer for focus highlighting.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/navgrid"
)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Fragment shader source: flat color only, no textures.
const fragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec4 color;

void main() {
    FragColor = color;
}
` + "\x00"

// Renderer draws flat-colored rectangles in pixel coordinates (origin
// top-left, y down). It is enough to render focusable regions and the
// focus highlight around the current item.
//
// Renderer also implements navgrid.Repainter: RepaintFast marks the
// frame dirty and returns immediately; hosts that render on demand
// check ConsumeDirty before redrawing.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	projLoc  int32
	colorLoc int32
	width    int
	height   int
	dirty    bool
}

// NewRenderer creates a renderer for the given viewport size.
// An OpenGL 4.1 context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		dirty:  true,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.colorLoc = gl.GetUniformLocation(r.shader, gl.Str("color\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return r, nil
}

// RepaintFast implements navgrid.Repainter. Fire-and-forget: it only
// marks the frame dirty.
func (r *Renderer) RepaintFast(region navgrid.Focusable) {
	r.dirty = true
}

// ConsumeDirty reports whether a repaint was requested since the last
// call, and clears the flag.
func (r *Renderer) ConsumeDirty() bool {
	d := r.dirty
	r.dirty = false
	return d
}

// Resize updates the projection for a new viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// DrawRect fills a rectangle with the given RGBA color (components in
// 0..1).
func (r *Renderer) DrawRect(rect navgrid.Rect, color [4]float32) {
	verts := [12]float32{
		rect.X, rect.Y,
		rect.X + rect.W, rect.Y,
		rect.X + rect.W, rect.Y + rect.H,
		rect.X, rect.Y,
		rect.X + rect.W, rect.Y + rect.H,
		rect.X, rect.Y + rect.H,
	}
	r.draw(verts[:], color)
}

// DrawRectOutline strokes a rectangle border of the given thickness.
// Used for the focus ring around the current item.
func (r *Renderer) DrawRectOutline(rect navgrid.Rect, color [4]float32, thickness float32) {
	t := thickness
	r.DrawRect(navgrid.Rect{X: rect.X - t, Y: rect.Y - t, W: rect.W + 2*t, H: t}, color)
	r.DrawRect(navgrid.Rect{X: rect.X - t, Y: rect.Y + rect.H, W: rect.W + 2*t, H: t}, color)
	r.DrawRect(navgrid.Rect{X: rect.X - t, Y: rect.Y, W: t, H: rect.H}, color)
	r.DrawRect(navgrid.Rect{X: rect.X + rect.W, Y: rect.Y, W: t, H: rect.H}, color)
}

// draw uploads vertices and issues one triangle draw.
func (r *Renderer) draw(verts []float32, color [4]float32) {
	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.Uniform4f(r.colorLoc, color[0], color[1], color[2], color[3])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/2))
	gl.BindVertexArray(0)
}

// Delete releases all OpenGL resources.
func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shader)
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Shaders are linked into the program now.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
