// Package renderer rasterizes the scene's triangles into a framebuffer from
// the point of view of a camera node.
package renderer

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/engine/framebuffer"
	"github.com/Faultbox/yeentooth/internal/engine/lighting"
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/logger"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// ErrNotCamera is returned when Render is given a node without a camera.
var ErrNotCamera = errors.New("renderer: node is not a camera")

// Config holds renderer configuration.
type Config struct {
	Background shade.Color
	DepthClear float64
	// Near rejects a triangle if any vertex has camera-space depth at or
	// below it.
	Near float64
}

// DefaultConfig returns the standard settings: white background, depth
// cleared to 1024, near epsilon 0.1.
func DefaultConfig() Config {
	return Config{
		Background: shade.White,
		DepthClear: framebuffer.DefaultDepthClear,
		Near:       0.1,
	}
}

// Stats counts what happened to triangles during the last frame.
type Stats struct {
	Triangles        int
	CulledNear       int
	RejectedViewport int
	Drawn            int
	Pixels           int
}

// Fields returns the stats as zap fields.
func (s Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("triangles", s.Triangles),
		zap.Int("culledNear", s.CulledNear),
		zap.Int("rejectedViewport", s.RejectedViewport),
		zap.Int("drawn", s.Drawn),
		zap.Int("pixels", s.Pixels),
	}
}

// Renderer draws scenes into its framebuffer.
type Renderer struct {
	config Config
	fb     *framebuffer.Framebuffer
	lights *lighting.Buffer
	stats  Stats
	log    *zap.Logger
}

// New creates a renderer drawing into fb.
func New(cfg Config, fb *framebuffer.Framebuffer) *Renderer {
	return &Renderer{
		config: cfg,
		fb:     fb,
		lights: lighting.NewBuffer(),
		log:    logger.Named("renderer"),
	}
}

// Framebuffer returns the render target.
func (r *Renderer) Framebuffer() *framebuffer.Framebuffer { return r.fb }

// Stats returns the counters of the last Render call.
func (r *Renderer) Stats() Stats { return r.stats }

// Resize changes the framebuffer resolution. Cameras keep the perspective
// constant computed at their construction.
func (r *Renderer) Resize(width, height int) {
	r.fb.Resize(width, height)
	r.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// Render clears the framebuffer and draws every triangle reachable from the
// scene root as seen from camera. The scene must not be mutated during the
// call.
func (r *Renderer) Render(s *scene.Scene, camera scene.NodeID) error {
	cam, ok := s.Node(camera)
	if !ok || cam.Camera == nil {
		return fmt.Errorf("render from %v: %w", camera, ErrNotCamera)
	}

	r.stats = Stats{}
	r.fb.Clear(r.config.Background, r.config.DepthClear)
	r.lights.Collect(s, s.Root())

	view := viewTransform{
		position: cam.Position(),
		inverse:  cam.Orientation().Inverse(),
		k:        cam.Camera.K,
	}
	for _, id := range s.DescendantsOfType(s.Root(), scene.TypeTriangle) {
		n, _ := s.Node(id)
		r.stats.Triangles++
		r.drawTriangle(n, view)
	}
	return nil
}

type viewTransform struct {
	position math.Vec3
	inverse  math.Mat3
	k        float64
}

// project maps a camera-space point to pixel coordinates.
func (v viewTransform) project(p math.Vec3, width, height int) (x, y float64) {
	x = gomath.Floor(p.X/(p.Z*v.k) + float64(width)/2)
	y = gomath.Floor(-p.Y/(p.Z*v.k) + float64(height)/2)
	return x, y
}

func (r *Renderer) drawTriangle(n *scene.Node, view viewTransform) {
	tri := n.Triangle
	world := n.WorldVertices()
	width, height := r.fb.Size()

	var verts [3]vertex
	inside := false
	for i, w := range world {
		c := view.inverse.MulVec(w.Sub(view.position))
		if c.Z <= r.config.Near {
			r.stats.CulledNear++
			return
		}
		x, y := view.project(c, width, height)
		verts[i] = vertex{x: x, y: y, z: c.Z}
		if x >= 0 && y >= 0 && x < float64(width) && y < float64(height) {
			inside = true
		}
	}
	if !inside {
		r.stats.RejectedViewport++
		return
	}

	var light *shade.Color
	if tri.Lit {
		cast := r.lights.Cast(n.Normal(), world)
		light = &cast
	}

	p := newPainter(tri.Shading, light, &verts)
	r.stats.Drawn++
	r.stats.Pixels += r.fill(verts, p)
}
