// Package renderer provides OpenGL rendering for the terrain mesh.
package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrascape/internal/engine/lighting"
	"github.com/Faultbox/terrascape/internal/engine/terrain"
	"github.com/Faultbox/terrascape/internal/logger"
)

// Projection settings shared by every frame. Resize only changes the
// aspect ratio.
const (
	fovYDegrees = 45.0
	nearPlane   = 0.1
	farPlane    = 50.0
)

// terrainColor is the fixed flat shading color of the mesh.
var terrainColor = mgl32.Vec3{0.8, 0.8, 0.8}

// skyColor clears the background.
var skyColor = mgl32.Vec4{0.7, 0.8, 0.9, 1.0}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	shaderProgram uint32

	// Terrain geometry as a flat-shaded triangle soup
	terrainVAO         uint32
	terrainVBO         uint32
	terrainVertexCount int32

	projection mgl32.Mat4
	view       mgl32.Mat4

	projectionLoc int32
	viewLoc       int32
	lightPosLoc   int32
	ambientLoc    int32
	diffuseLoc    int32
	colorLoc      int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), skyColor.W())

	var err error
	r.shaderProgram, err = r.createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.projectionLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("projection\x00"))
	r.viewLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("view\x00"))
	r.lightPosLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("lightPos\x00"))
	r.ambientLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("lightAmbient\x00"))
	r.diffuseLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("lightDiffuse\x00"))
	r.colorLoc = gl.GetUniformLocation(r.shaderProgram, gl.Str("objectColor\x00"))

	r.view = mgl32.Ident4()
	r.updateProjection()
	r.SetLight(lighting.Overhead())

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.terrainVAO != 0 {
		gl.DeleteVertexArrays(1, &r.terrainVAO)
	}
	if r.terrainVBO != 0 {
		gl.DeleteBuffers(1, &r.terrainVBO)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize: viewport plus projection aspect only.
// Terrain and camera state are untouched.
func (r *Renderer) Resize(width, height int) {
	if height == 0 {
		height = 1 // Prevent division by zero in the aspect ratio
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.updateProjection()
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (r *Renderer) updateProjection() {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	r.projection = mgl32.Perspective(mgl32.DegToRad(fovYDegrees), aspect, nearPlane, farPlane)
}

// SetLight updates the light uniforms.
func (r *Renderer) SetLight(l lighting.PointLight) {
	gl.UseProgram(r.shaderProgram)
	gl.Uniform3f(r.lightPosLoc, l.Position.X(), l.Position.Y(), l.Position.Z())
	gl.Uniform3f(r.ambientLoc, l.Ambient.X(), l.Ambient.Y(), l.Ambient.Z())
	gl.Uniform3f(r.diffuseLoc, l.Diffuse.X(), l.Diffuse.Y(), l.Diffuse.Z())
	gl.Uniform3f(r.colorLoc, terrainColor.X(), terrainColor.Y(), terrainColor.Z())
}

// UploadTerrain expands the mesh into a flat-shaded triangle soup (one
// face normal shared by the triangle's three vertices) and uploads it.
// The old buffers are deleted only after the new ones are bound, so a
// regeneration swap is atomic with respect to the draw.
func (r *Renderer) UploadTerrain(mesh *terrain.Mesh) {
	soup := make([]float32, 0, len(mesh.Triangles)*18)
	for _, tri := range mesh.Triangles {
		n := mesh.FaceNormal(tri)
		for _, idx := range tri {
			v := mesh.Vertices[idx]
			soup = append(soup, v.X(), v.Y(), v.Z(), n.X(), n.Y(), n.Z())
		}
	}

	oldVAO, oldVBO := r.terrainVAO, r.terrainVBO

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(soup) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(soup)*4, gl.Ptr(soup), gl.STATIC_DRAW)
	}

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.terrainVAO = vao
	r.terrainVBO = vbo
	r.terrainVertexCount = int32(len(mesh.Triangles) * 3)

	if oldVAO != 0 {
		gl.DeleteVertexArrays(1, &oldVAO)
	}
	if oldVBO != 0 {
		gl.DeleteBuffers(1, &oldVBO)
	}

	logger.Debug("terrain uploaded",
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Int("vertices", len(mesh.Vertices)),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetView sets the view transform for this frame.
func (r *Renderer) SetView(view mgl32.Mat4) {
	r.view = view
}

// DrawTerrain draws the uploaded terrain mesh.
func (r *Renderer) DrawTerrain() {
	if r.terrainVertexCount == 0 {
		return
	}

	gl.UseProgram(r.shaderProgram)
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &r.projection[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &r.view[0])

	gl.BindVertexArray(r.terrainVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.terrainVertexCount)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to flush - the terrain is a single draw
}

// createShaderProgram compiles and links the flat shading program.
func (r *Renderer) createShaderProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 projection;
		uniform mat4 view;

		out vec3 fragPos;
		flat out vec3 faceNormal;

		void main() {
			fragPos = aPos;
			faceNormal = aNormal;
			gl_Position = projection * view * vec4(aPos, 1.0);
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		in vec3 fragPos;
		flat in vec3 faceNormal;

		uniform vec3 lightPos;
		uniform vec3 lightAmbient;
		uniform vec3 lightDiffuse;
		uniform vec3 objectColor;

		out vec4 FragColor;

		void main() {
			vec3 n = normalize(faceNormal);
			vec3 lightDir = normalize(lightPos - fragPos);
			vec3 diffuse = lightDiffuse * max(dot(n, lightDir), 0.0);
			FragColor = vec4((lightAmbient + diffuse) * objectColor, 1.0);
		}
	` + "\x00"

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
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("link failed: %s", infoLog)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
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
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("compile failed: %s", infoLog)
	}

	return shader, nil
}
