package game

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/engine/camera"
	"github.com/Faultbox/yeentooth/internal/engine/lighting"
	"github.com/Faultbox/yeentooth/internal/engine/mesh"
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Demo scene rates.
const (
	CarouselSpeed = -0.8 // radians per second about Y
	CubeSpeed     = 1.0
	SunBrightness = 0.8
	SunDim        = 0.4
	SunPulse      = 3 // seconds per half cycle
	FloorLevel    = -1.0
)

var (
	grey       = shade.RGB(108, 108, 108)
	offWhite   = shade.RGB(252, 252, 252)
	gradientA  = shade.RGB(248, 54, 119)
	gradientB  = shade.RGB(58, 244, 189)
	gradientC  = shade.RGB(229, 249, 54)
	sunColor   = shade.RGB(255, 255, 220)
	checkerInk = shade.RGB(200, 60, 60)
)

// DemoOptions configures BuildDemo.
type DemoOptions struct {
	FOV    float64
	Height int              // vertical resolution, for the camera
	Cube   *texture.Texture // nil uses a generated checkerboard
	Sun    bool

	// Sun position in degrees, see lighting.SunDirection.
	SunLongitude, SunLatitude float64
}

// Demo holds the handles of the sample scene's moving parts.
type Demo struct {
	Player   scene.NodeID
	Head     scene.NodeID
	Carousel scene.NodeID
	Cube     scene.NodeID
	Sun      scene.NodeID // Nil when disabled

	Controller *camera.FlyController
	pulse      *Pulse
}

// BuildDemo populates s with the sample scene: two walls and a floor, a
// tower of gradient cubes, a textured cube circled by three coloured point
// lights and an optional sun.
func BuildDemo(s *scene.Scene, opts DemoOptions) (*Demo, error) {
	d := &Demo{}
	root := s.Root()

	d.Player = s.NewNode("player", "Player")
	if err := s.SetPosition(d.Player, math.V3(0, 0, -4)); err != nil {
		return nil, err
	}
	if err := s.Attach(root, d.Player); err != nil {
		return nil, err
	}
	d.Head = s.NewCamera("head", opts.FOV, opts.Height)
	if err := s.AttachRelative(d.Player, d.Head); err != nil {
		return nil, err
	}
	d.Controller = camera.NewFlyController(d.Player, d.Head)

	walls := []struct {
		name        string
		res         [2]int
		scale       float64
		position    math.Vec3
		orientation math.Mat3
		c1, c2      shade.Color
	}{
		{"left wall", [2]int{3, 3}, 4, math.V3(-2, 1, 0), math.Mat3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}, offWhite, grey},
		{"back wall", [2]int{3, 3}, 4, math.V3(0, 1, 2), math.Mat3{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}, shade.Black, grey},
		{"floor", [2]int{6, 6}, 8, math.V3(2, FloorLevel, -2), math.Identity3(), shade.Black, grey},
	}
	for _, w := range walls {
		plane, err := mesh.NewPlane(s, w.res, w.c1, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.name, err)
		}
		mesh.SetPatternTriangles(s, plane, w.c1, w.c2)
		if err := place(s, root, plane, w.position, w.orientation.Mul(math.Scale3(w.scale))); err != nil {
			return nil, fmt.Errorf("%s: %w", w.name, err)
		}
		if w.name == "back wall" {
			mesh.ToGradient(s, plane, gradientA, gradientB, gradientC)
		}
	}

	for i := 0; i < 5; i++ {
		cube, err := mesh.NewCube(s, shade.White, true)
		if err != nil {
			return nil, err
		}
		mesh.ToGradient(s, cube, gradientA, gradientB, gradientC)
		if err := place(s, root, cube, math.V3(0, float64(i), 0), math.Scale3(0.5)); err != nil {
			return nil, err
		}
	}

	tex := opts.Cube
	if tex == nil {
		tex = Checkerboard(16, 4, shade.White, checkerInk)
	}
	cube, err := mesh.NewCube(s, shade.White, true)
	if err != nil {
		return nil, err
	}
	mesh.SetCubeTexture(s, cube, tex)
	if err := place(s, root, cube, math.V3(5, 0, 0), math.Identity3()); err != nil {
		return nil, err
	}
	d.Cube = cube

	d.Carousel = s.NewNode("carousel")
	if err := place(s, root, d.Carousel, math.V3(5, 0, 0), math.Identity3()); err != nil {
		return nil, err
	}
	lights := []struct {
		name   string
		offset math.Vec3
		color  shade.Color
	}{
		{"green", math.V3(2, 0, 0), shade.RGB(100, 255, 100)},
		{"red", math.V3(0, 0, -2), shade.RGB(255, 100, 100)},
		{"blue", math.V3(0, 0, 2), shade.RGB(100, 100, 255)},
	}
	for _, l := range lights {
		id := s.NewLight(l.name, scene.Light{Kind: scene.PointLight, Brightness: 0.9, Color: l.color})
		if err := s.AttachRelative(d.Carousel, id); err != nil {
			return nil, err
		}
		if err := s.SetPositionRelative(id, l.offset); err != nil {
			return nil, err
		}
	}

	if opts.Sun {
		d.Sun = s.NewLight("sun", scene.Light{Kind: scene.DirectionalLight, Brightness: SunBrightness, Color: sunColor})
		if err := s.SetOrientation(d.Sun, lighting.SunOrientation(opts.SunLongitude, opts.SunLatitude)); err != nil {
			return nil, err
		}
		if err := s.Attach(root, d.Sun); err != nil {
			return nil, err
		}
		d.pulse = NewPulse(SunBrightness, SunDim, SunPulse)
	}

	return d, nil
}

// place sets the absolute pose of a standalone node and attaches it.
func place(s *scene.Scene, parent, id scene.NodeID, pos math.Vec3, orientation math.Mat3) error {
	if err := s.SetOrientation(id, orientation); err != nil {
		return err
	}
	if err := s.SetPosition(id, pos); err != nil {
		return err
	}
	return s.Attach(parent, id)
}

// Behaviours returns the demo's per-frame logic: player controls, spinning
// carousel and cube, and the sun pulse.
func (d *Demo) Behaviours() []Behaviour {
	b := []Behaviour{
		Controls(d.Controller),
		Spin(d.Carousel, CarouselSpeed),
		Spin(d.Cube, CubeSpeed),
	}
	if d.Sun != scene.Nil && d.pulse != nil {
		sun, pulse := d.Sun, d.pulse
		b = append(b, func(f *Frame) {
			if n, ok := f.Scene.Node(sun); ok && n.Light != nil {
				n.Light.Brightness = pulse.Update(f.DT)
			}
		})
	}
	return b
}

// Install makes the head the game's camera, declares the floor and
// registers the behaviours.
func (d *Demo) Install(g *Game) {
	g.SetCamera(d.Head)
	g.SetFloorLevel(FloorLevel)
	g.AddBehaviour(d.Behaviours()...)
}

// Spin returns a behaviour rotating id about its own Y axis at rate radians
// per second.
func Spin(id scene.NodeID, rate float64) Behaviour {
	return func(f *Frame) {
		if err := f.Scene.RotateEuler(id, 0, rate*f.DT, 0); err != nil {
			f.Log.Warn("spin", zap.Uint64("node", uint64(id)), zap.Error(err))
		}
	}
}

// Pulse oscillates between two values, easing in and out each way.
type Pulse struct {
	there, back *gween.Tween
	returning   bool
}

// NewPulse creates a pulse starting at from, reaching to after half seconds
// and returning after as many again.
func NewPulse(from, to float64, half float32) *Pulse {
	return &Pulse{
		there: gween.New(float32(from), float32(to), half, ease.InOutSine),
		back:  gween.New(float32(to), float32(from), half, ease.InOutSine),
	}
}

// Update advances the pulse by dt seconds and returns its value.
func (p *Pulse) Update(dt float64) float64 {
	t := p.there
	if p.returning {
		t = p.back
	}
	v, done := t.Update(float32(dt))
	if done {
		t.Reset()
		p.returning = !p.returning
	}
	return float64(v)
}

// Checkerboard generates a size x size texture of cell x cell squares.
func Checkerboard(size, cell int, a, b shade.Color) *texture.Texture {
	tex := texture.New("checker", size, size, a)
	cell = max(cell, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 1 {
				tex.Set(x, y, b)
			}
		}
	}
	return tex
}
