// Package game implements the frame loop around a scene and its renderer.
// It has no display dependency; see package desktop for the SDL shell.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/config"
	"github.com/Faultbox/yeentooth/internal/engine/debug"
	"github.com/Faultbox/yeentooth/internal/engine/framebuffer"
	"github.com/Faultbox/yeentooth/internal/engine/picking"
	"github.com/Faultbox/yeentooth/internal/engine/renderer"
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/logger"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Frame is what behaviours see each frame.
type Frame struct {
	Scene *scene.Scene
	DT    float64 // seconds since the previous frame
	Time  float64 // seconds since the first frame
	Keys  KeyState
	Log   *zap.Logger
}

// Behaviour is per-frame game logic. Behaviours run in registration order
// before physics and rendering.
type Behaviour func(f *Frame)

// PhysicsStep advances an external simulation over the scene. It may move
// nodes through the transform API only.
type PhysicsStep interface {
	Step(s *scene.Scene, dt float64)
}

// Game owns the scene and everything needed to draw it.
type Game struct {
	scene    *scene.Scene
	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	camera   scene.NodeID

	behaviours []Behaviour
	physics    PhysicsStep
	elapsed    float64

	screenshots *debug.ScreenshotCapture
	floorY      float64
	hasFloor    bool

	log *zap.Logger
}

// New creates a game: scene, framebuffer and renderer.
func New(cfg *config.Config) *Game {
	log := logger.Named("game")
	log.Info("initializing",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.Float64("fov", cfg.Render.FOV),
	)

	fb := framebuffer.New(cfg.Display.Width, cfg.Display.Height)
	bg := cfg.Render.Background
	r := renderer.New(renderer.Config{
		Background: shade.RGB(float64(bg[0]), float64(bg[1]), float64(bg[2])),
		DepthClear: cfg.Render.DepthClear,
		Near:       cfg.Render.Near,
	}, fb)

	return &Game{
		scene:       scene.New(scene.WithLogger(logger.Named("scene"))),
		fb:          fb,
		renderer:    r,
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "yeentooth", cfg.Debug.ScreenshotScale),
		log:         log,
	}
}

// Scene returns the game's scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Framebuffer returns the render target.
func (g *Game) Framebuffer() *framebuffer.Framebuffer { return g.fb }

// Renderer returns the renderer.
func (g *Game) Renderer() *renderer.Renderer { return g.renderer }

// SetCamera selects the camera node frames are rendered from.
func (g *Game) SetCamera(id scene.NodeID) { g.camera = id }

// Camera returns the current camera node.
func (g *Game) Camera() scene.NodeID { return g.camera }

// AddBehaviour appends per-frame logic.
func (g *Game) AddBehaviour(b ...Behaviour) {
	g.behaviours = append(g.behaviours, b...)
}

// SetPhysics installs the physics hook. nil disables it.
func (g *Game) SetPhysics(p PhysicsStep) { g.physics = p }

// SetFloorLevel declares a ground plane at height y for Crosshair.
func (g *Game) SetFloorLevel(y float64) {
	g.floorY, g.hasFloor = y, true
}

// SetScreenshotDir redirects later captures to dir.
func (g *Game) SetScreenshotDir(dir string) {
	g.screenshots.SetOutputDir(dir)
}

// Step runs one frame without presenting it: behaviours, physics, render.
func (g *Game) Step(dt float64, keys KeyState) error {
	g.elapsed += dt
	f := &Frame{
		Scene: g.scene,
		DT:    dt,
		Time:  g.elapsed,
		Keys:  keys,
		Log:   g.log,
	}
	for _, b := range g.behaviours {
		b(f)
	}
	if g.physics != nil {
		g.physics.Step(g.scene, dt)
	}
	if err := g.renderer.Render(g.scene, g.camera); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Capture writes the last frame's colour or depth buffer as a PNG and
// returns the file name.
func (g *Game) Capture(depth bool) (string, error) {
	var (
		name string
		err  error
	)
	if depth {
		name, err = g.screenshots.CaptureDepth(g.fb)
	} else {
		name, err = g.screenshots.Capture(g.fb)
	}
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	g.log.Info("screenshot saved", zap.String("file", name))
	return name, nil
}

// Crosshair describes what lies under the centre of the frame.
type Crosshair struct {
	Hit      picking.Hit
	OnObject bool
	Floor    math.Vec3 // where the centre ray meets the floor level
	OnFloor  bool
}

// Crosshair picks through the centre pixel of the current camera.
func (g *Game) Crosshair() Crosshair {
	var c Crosshair
	w, h := g.fb.Size()
	c.Hit, c.OnObject = picking.Pick(g.scene, g.camera, w/2, h/2, w, h)

	cam, ok := g.scene.Node(g.camera)
	if !g.hasFloor || !ok || cam.Camera == nil {
		return c
	}
	if x, z, ok := picking.ScreenToRay(cam, w/2, h/2, w, h).IntersectPlaneY(g.floorY); ok {
		c.Floor, c.OnFloor = math.V3(x, g.floorY, z), true
	}
	return c
}

// LogCrosshair logs what lies under the centre of the frame.
func (g *Game) LogCrosshair() {
	c := g.Crosshair()
	fields := make([]zap.Field, 0, 5)
	if c.OnObject {
		fields = append(fields,
			zap.Strings("tags", g.scene.Tags(c.Hit.Node)),
			zap.Float64("distance", c.Hit.Distance),
			zap.String("parent", g.nodeName(g.scene.Parent(c.Hit.Node))),
		)
	}
	if c.OnFloor {
		fields = append(fields, zap.Float64("floor_x", c.Floor.X), zap.Float64("floor_z", c.Floor.Z))
	}
	if len(fields) == 0 {
		g.log.Info("nothing under crosshair")
		return
	}
	g.log.Info("under crosshair", fields...)
}

func (g *Game) nodeName(id scene.NodeID) string {
	if n, ok := g.scene.Node(id); ok {
		return n.Name
	}
	return ""
}
