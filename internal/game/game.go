// Package game implements the main viewer loop.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrascape/internal/config"
	"github.com/Faultbox/terrascape/internal/engine/camera"
	"github.com/Faultbox/terrascape/internal/engine/input"
	"github.com/Faultbox/terrascape/internal/engine/renderer"
	"github.com/Faultbox/terrascape/internal/engine/terrain"
	"github.com/Faultbox/terrascape/internal/engine/window"
	"github.com/Faultbox/terrascape/internal/logger"
)

// Game is the main viewer instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   camera.Controller
	mesh     *terrain.Mesh
	limiter  *FPSLimiter
}

// New creates the viewer: window, renderer, terrain and camera.
// The terrain build is synchronous; it runs once before the loop starts.
func New(cfg *config.Config) (*Game, error) {
	variant := terrain.ParseVariant(cfg.Noise.Type)
	if string(variant) != cfg.Noise.Type {
		logger.Warn("unknown noise type, falling back to perlin",
			zap.String("type", cfg.Noise.Type),
		)
	}

	seed := cfg.Noise.Seed
	if seed < 0 {
		seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(10000)
		logger.Info("no seed given, drew one", zap.Int64("seed", seed))
	}

	g := &Game{
		cfg:     cfg,
		running: false,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      fmt.Sprintf("Terrascape - %s noise", variant),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	g.window.SetIcon("icon.bmp")

	// Create renderer (AFTER window, since the OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	// Generate the terrain
	params := terrain.Params{
		Variant:     variant,
		Seed:        seed,
		Octaves:     cfg.Noise.Octaves,
		Persistence: cfg.Noise.Persistence,
		Lacunarity:  cfg.Noise.Lacunarity,
		Scale:       cfg.Noise.Scale,
		HeightScale: cfg.Terrain.HeightScale,
	}

	start := time.Now()
	field := terrain.NewField(params)
	g.mesh = terrain.BuildMesh(field.Grid(cfg.Terrain.Size), cfg.Terrain.CellSpacing, cfg.Terrain.HeightScale)
	logger.Info("terrain generated",
		zap.String("noise", string(variant)),
		zap.Int64("seed", seed),
		zap.Int("size", cfg.Terrain.Size),
		zap.Int("vertices", len(g.mesh.Vertices)),
		zap.Int("triangles", len(g.mesh.Triangles)),
		zap.Duration("took", time.Since(start)),
	)
	g.renderer.UploadTerrain(g.mesh)

	if cfg.Camera.Fly {
		// Start at the orbit camera's isometric eye point, looking at the origin
		g.camera = camera.NewFlyCamera(mgl32.Vec3{10, 10, 10}, -135, -35)
	} else {
		g.camera = camera.NewOrbitCamera()
	}

	g.limiter = NewFPSLimiter(cfg.Graphics.FPSLimit)

	logger.Info("viewer initialized", zap.Bool("fly", cfg.Camera.Fly))
	return g, nil
}

// Run starts the main loop. Per tick: drain events, sample held keys,
// recompute the view, draw, present, then wait out the frame cap.
func (g *Game) Run() error {
	g.running = true

	logger.Info("starting main loop")

	for g.running {
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		g.handleEvents()
		g.handleHeldKeys()

		g.renderer.Begin()
		g.renderer.SetView(g.camera.ViewMatrix())
		g.renderer.DrawTerrain()
		g.renderer.End()

		g.window.SwapBuffers()
		g.limiter.Wait()
	}

	return nil
}

// handleEvents processes the discrete events drained this tick.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.window.Resize(event.Width, event.Height)
			g.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			g.handleKeyDown(event.Key)

		case input.EventMouseMove:
			// Fly look control is inert while the cursor is not captured
			if fly, ok := g.camera.(*camera.FlyCamera); ok && g.window.CursorCaptured() {
				fly.HandleMouse(float32(event.MouseDX), float32(event.MouseDY))
			}
		}
	}
}

func (g *Game) handleKeyDown(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		g.running = false

	case sdl.SCANCODE_E:
		g.camera.Reset()

	case sdl.SCANCODE_Q:
		g.window.SetCursorCaptured(!g.window.CursorCaptured())

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		if orbit, ok := g.camera.(*camera.OrbitCamera); ok {
			orbit.ZoomIn()
		}

	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		if orbit, ok := g.camera.(*camera.OrbitCamera); ok {
			orbit.ZoomOut()
		}
	}
}

// handleHeldKeys samples continuous key state for movement/rotation.
func (g *Game) handleHeldKeys() {
	switch cam := g.camera.(type) {
	case *camera.OrbitCamera:
		if g.input.IsKeyDown(sdl.SCANCODE_LEFT) {
			cam.Rotate(0, 1)
		}
		if g.input.IsKeyDown(sdl.SCANCODE_RIGHT) {
			cam.Rotate(0, -1)
		}
		if g.input.IsKeyDown(sdl.SCANCODE_UP) {
			cam.Rotate(1, 0)
		}
		if g.input.IsKeyDown(sdl.SCANCODE_DOWN) {
			cam.Rotate(-1, 0)
		}

	case *camera.FlyCamera:
		var forward, strafe, vertical float32
		if g.input.IsKeyDown(sdl.SCANCODE_W) {
			forward++
		}
		if g.input.IsKeyDown(sdl.SCANCODE_S) {
			forward--
		}
		if g.input.IsKeyDown(sdl.SCANCODE_D) {
			strafe++
		}
		if g.input.IsKeyDown(sdl.SCANCODE_A) {
			strafe--
		}
		if g.input.IsKeyDown(sdl.SCANCODE_SPACE) {
			vertical++
		}
		if g.input.IsKeyDown(sdl.SCANCODE_LSHIFT) || g.input.IsKeyDown(sdl.SCANCODE_RSHIFT) {
			vertical--
		}
		if forward != 0 || strafe != 0 || vertical != 0 {
			cam.Move(forward, strafe, vertical)
		}
	}
}

// Close releases capture and tears down renderer and window. Safe to
// call on the error path with partially constructed state.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
