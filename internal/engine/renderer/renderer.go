// Package renderer draws the input demo scene with OpenGL: a reference dot
// at the centre of the window and a marker pushed away from it by the
// resolved movement direction.
package renderer

import (
	"fmt"
	gomath "math"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/logger"
	"github.com/Faultbox/midgard-input/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Color is an RGB color in [0, 1].
type Color struct {
	R, G, B float32
}

// Marker colors.
var (
	ColorIdle   = Color{0.55, 0.6, 0.7}
	ColorMoving = Color{0.3, 0.8, 0.45}
	ColorAction = Color{0.95, 0.75, 0.2}
)

// Renderer owns the GL objects for the demo scene.
type Renderer struct {
	config Config

	program   uint32
	uOffset   int32
	uScale    int32
	uColor    int32
	markerVAO uint32
	markerVBO uint32
}

// New creates a renderer. The OpenGL context must already be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = createProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uOffset = gl.GetUniformLocation(r.program, gl.Str("uOffset\x00"))
	r.uScale = gl.GetUniformLocation(r.program, gl.Str("uScale\x00"))
	r.uColor = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))

	r.createMarker()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases GL objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.markerVAO != 0 {
		gl.DeleteVertexArrays(1, &r.markerVAO)
	}
	if r.markerVBO != 0 {
		gl.DeleteBuffers(1, &r.markerVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawDirection draws the centre dot and the direction marker. dir uses
// screen space (+Y down) and is expected to have length 0 or 1.
func (r *Renderer) DrawDirection(dir math.Vec2, c Color) {
	// Keep the marker round on non-square windows
	aspect := float32(r.config.Height) / float32(r.config.Width)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.markerVAO)

	gl.Uniform2f(r.uScale, 0.02*aspect, 0.02)
	gl.Uniform2f(r.uOffset, 0, 0)
	gl.Uniform3f(r.uColor, 0.35, 0.35, 0.4)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, markerSegments+2)

	// Flip Y into GL clip space
	gl.Uniform2f(r.uScale, 0.06*aspect, 0.06)
	gl.Uniform2f(r.uOffset, dir.X*0.5*aspect, -dir.Y*0.5)
	gl.Uniform3f(r.uColor, c.R, c.G, c.B)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, markerSegments+2)

	gl.BindVertexArray(0)
}

const markerSegments = 24

func (r *Renderer) createMarker() {
	vertices := make([]float32, 0, (markerSegments+2)*2)
	vertices = append(vertices, 0, 0)
	for i := 0; i <= markerSegments; i++ {
		x, y := circlePoint(i, markerSegments)
		vertices = append(vertices, x, y)
	}

	gl.GenVertexArrays(1, &r.markerVAO)
	gl.BindVertexArray(r.markerVAO)

	gl.GenBuffers(1, &r.markerVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.markerVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("marker created",
		zap.Uint32("vao", r.markerVAO),
		zap.Uint32("vbo", r.markerVBO),
	)
}

func circlePoint(i, n int) (float32, float32) {
	if i%n == 0 {
		return 1, 0 // close the fan exactly
	}
	angle := 2 * gomath.Pi * float64(i) / float64(n)
	return float32(gomath.Cos(angle)), float32(gomath.Sin(angle))
}

const vertexShaderSource = `
	#version 410 core

	layout (location = 0) in vec2 aPos;

	uniform vec2 uOffset;
	uniform vec2 uScale;

	void main() {
		gl_Position = vec4(aPos * uScale + uOffset, 0.0, 1.0);
	}
` + "\x00"

const fragmentShaderSource = `
	#version 410 core

	uniform vec3 uColor;
	out vec4 FragColor;

	void main() {
		FragColor = vec4(uColor, 1.0);
	}
` + "\x00"

func createProgram() (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
