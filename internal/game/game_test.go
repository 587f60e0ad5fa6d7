package game

import (
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/yeentooth/internal/config"
	"github.com/Faultbox/yeentooth/internal/engine/lighting"
	"github.com/Faultbox/yeentooth/internal/engine/mesh"
	"github.com/Faultbox/yeentooth/internal/engine/renderer"
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

type keys map[Action]bool

func (k keys) Down(a Action) bool { return k[a] }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.Width = 64
	cfg.Display.Height = 48
	cfg.Debug.ScreenshotDir = ""
	return cfg
}

func newDemoGame(t *testing.T, sun bool) (*Game, *Demo) {
	t.Helper()
	cfg := testConfig()
	g := New(cfg)
	d, err := BuildDemo(g.Scene(), DemoOptions{FOV: cfg.Render.FOV, Height: cfg.Display.Height, Sun: sun})
	if err != nil {
		t.Fatalf("BuildDemo() error = %v", err)
	}
	d.Install(g)
	return g, d
}

func TestIntentFromKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  keys
		move  math.Vec3
		yaw   float64
		pitch float64
	}{
		{"none", keys{}, math.Vec3{}, 0, 0},
		{"forward", keys{MoveForward: true}, math.V3(0, 0, 1), 0, 0},
		{"back left", keys{MoveBack: true, StrafeLeft: true}, math.V3(-1, 0, -1), 0, 0},
		{"opposite cancel", keys{Rise: true, Sink: true}, math.Vec3{}, 0, 0},
		{"rise", keys{Rise: true}, math.V3(0, 1, 0), 0, 0},
		{"turn right", keys{TurnRight: true}, math.Vec3{}, 1, 0},
		{"look up", keys{LookUp: true}, math.Vec3{}, 0, -1},
		{"look down", keys{LookDown: true}, math.Vec3{}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := IntentFromKeys(tt.keys)
			if in.Move != tt.move || in.Yaw != tt.yaw || in.Pitch != tt.pitch {
				t.Errorf("IntentFromKeys() = %+v, want move %v yaw %v pitch %v", in, tt.move, tt.yaw, tt.pitch)
			}
		})
	}

	if in := IntentFromKeys(nil); in.Move != (math.Vec3{}) {
		t.Errorf("IntentFromKeys(nil) = %+v, want zero", in)
	}
}

func TestStepRequiresCamera(t *testing.T) {
	g := New(testConfig())
	err := g.Step(0.016, nil)
	if !errors.Is(err, renderer.ErrNotCamera) {
		t.Errorf("Step() error = %v, want ErrNotCamera", err)
	}
}

func TestActions(t *testing.T) {
	all := Actions()
	if len(all) != 10 {
		t.Fatalf("Actions() = %d entries, want 10", len(all))
	}
	names := make(map[string]bool)
	for _, a := range all {
		names[a.String()] = true
	}
	if len(names) != len(all) || names["unknown"] {
		t.Errorf("action names not distinct: %v", names)
	}
	if Action(200).String() != "unknown" {
		t.Errorf("out of range action = %q", Action(200).String())
	}
}

type recorder struct {
	order *[]string
	dt    float64
}

func (r *recorder) Step(s *scene.Scene, dt float64) {
	*r.order = append(*r.order, "physics")
	r.dt = dt
}

func TestStepOrder(t *testing.T) {
	g := New(testConfig())
	s := g.Scene()
	cam := s.NewCamera("cam", 60, 48)
	if err := s.Attach(s.Root(), cam); err != nil {
		t.Fatal(err)
	}
	g.SetCamera(cam)

	var order []string
	g.AddBehaviour(
		func(f *Frame) { order = append(order, "first") },
		func(f *Frame) { order = append(order, "second") },
	)
	phys := &recorder{order: &order}
	g.SetPhysics(phys)

	if err := g.Step(0.25, nil); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	want := []string{"first", "second", "physics"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if phys.dt != 0.25 {
		t.Errorf("physics dt = %v, want 0.25", phys.dt)
	}
}

func TestFrameTimeAccumulates(t *testing.T) {
	g := New(testConfig())
	s := g.Scene()
	cam := s.NewCamera("cam", 60, 48)
	s.Attach(s.Root(), cam)
	g.SetCamera(cam)

	var last float64
	g.AddBehaviour(func(f *Frame) { last = f.Time })
	for i := 0; i < 4; i++ {
		if err := g.Step(0.5, nil); err != nil {
			t.Fatal(err)
		}
	}
	if last != 2 {
		t.Errorf("Frame.Time = %v, want 2", last)
	}
}

func TestBuildDemo(t *testing.T) {
	g, d := newDemoGame(t, true)
	s := g.Scene()

	if got := s.Position(d.Player); !got.ApproxEqual(math.V3(0, 0, -4), 1e-9) {
		t.Errorf("player at %v, want (0,0,-4)", got)
	}
	if got := s.Position(d.Head); !got.ApproxEqual(s.Position(d.Player), 1e-9) {
		t.Errorf("head at %v, want player position", got)
	}
	if s.Type(d.Head) != scene.TypeCamera {
		t.Errorf("head type = %v, want camera", s.Type(d.Head))
	}
	if g.Camera() != d.Head {
		t.Error("Install did not select the head camera")
	}

	lights := s.DescendantsOfType(s.Root(), scene.TypeLight)
	if len(lights) != 4 {
		t.Errorf("lights = %d, want 4", len(lights))
	}
	if len(s.ChildrenOfType(d.Carousel, scene.TypeLight)) != 3 {
		t.Error("carousel should carry three lights")
	}
	// 3 walls, 6 cubes.
	if got := len(s.ChildrenOfType(s.Root(), scene.TypeMesh)); got != 9 {
		t.Errorf("meshes = %d, want 9", got)
	}

	sun, _ := s.Node(d.Sun)
	if sun.Light.Kind != scene.DirectionalLight {
		t.Errorf("sun kind = %v, want directional", sun.Light.Kind)
	}
}

func TestBuildDemoWithoutSun(t *testing.T) {
	g, d := newDemoGame(t, false)
	if d.Sun != scene.Nil {
		t.Error("sun should be Nil when disabled")
	}
	if n := len(g.Scene().DescendantsOfType(g.Scene().Root(), scene.TypeLight)); n != 3 {
		t.Errorf("lights = %d, want 3", n)
	}
}

func TestDemoRenders(t *testing.T) {
	g, _ := newDemoGame(t, true)
	if err := g.Step(0.016, nil); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	st := g.Renderer().Stats()
	if st.Drawn == 0 || st.Pixels == 0 {
		t.Fatalf("nothing drawn: %+v", st)
	}

	fb := g.Framebuffer()
	w, h := fb.Size()
	if d := fb.DepthAt(w/2, h/2); d >= 1024 {
		t.Errorf("centre depth = %v, want geometry in front of the player", d)
	}
	if fb.ColorAt(w/2, h/2) == shade.White {
		t.Error("centre pixel still has the background colour")
	}
}

func TestCarouselSpins(t *testing.T) {
	g, d := newDemoGame(t, false)
	s := g.Scene()
	green := s.ChildrenOfType(d.Carousel, scene.TypeLight)[0]
	before := s.Position(green)
	centre := s.Position(d.Carousel)

	if err := g.Step(0.5, nil); err != nil {
		t.Fatal(err)
	}
	after := s.Position(green)
	if after.ApproxEqual(before, 1e-6) {
		t.Error("carousel light did not move")
	}
	if r := after.Distance(centre); gomath.Abs(r-2) > 1e-9 {
		t.Errorf("light radius = %v, want 2", r)
	}
}

func TestControlsMovePlayer(t *testing.T) {
	g, d := newDemoGame(t, false)
	s := g.Scene()
	if err := g.Step(0.5, keys{MoveForward: true}); err != nil {
		t.Fatal(err)
	}
	// Speed 4 for half a second along +Z.
	if got := s.Position(d.Player); !got.ApproxEqual(math.V3(0, 0, -2), 1e-9) {
		t.Errorf("player at %v, want (0,0,-2)", got)
	}
}

func TestSunPulse(t *testing.T) {
	g, d := newDemoGame(t, true)
	sun, _ := g.Scene().Node(d.Sun)
	if err := g.Step(SunPulse, nil); err != nil {
		t.Fatal(err)
	}
	if gomath.Abs(sun.Light.Brightness-SunDim) > 1e-4 {
		t.Errorf("brightness = %v, want %v after half a cycle", sun.Light.Brightness, SunDim)
	}
}

func TestPulse(t *testing.T) {
	p := NewPulse(0.8, 0.4, 1)
	steps := []struct {
		dt   float64
		want float64
	}{
		{0.5, 0.6},
		{0.5, 0.4},
		{0.5, 0.6},
		{0.5, 0.8},
	}
	for i, s := range steps {
		if got := p.Update(s.dt); gomath.Abs(got-s.want) > 1e-4 {
			t.Errorf("step %d: Update() = %v, want %v", i, got, s.want)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	tex := Checkerboard(8, 2, shade.White, shade.Black)
	if tex.Width() != 8 || tex.Height() != 8 {
		t.Fatalf("size = %dx%d, want 8x8", tex.Width(), tex.Height())
	}
	tests := []struct {
		x, y int
		want shade.Color
	}{
		{0, 0, shade.White},
		{1, 1, shade.White},
		{2, 0, shade.Black},
		{0, 2, shade.Black},
		{2, 2, shade.White},
	}
	for _, tt := range tests {
		if got := tex.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCrosshair(t *testing.T) {
	g, _ := newDemoGame(t, false)
	c := g.Crosshair()
	if !c.OnObject {
		t.Fatal("Crosshair() missed")
	}
	// The bottom cube of the tower faces the player.
	if !g.Scene().HasTag(c.Hit.Node, mesh.TagCube) {
		t.Errorf("picked tags %v, want %s", g.Scene().Tags(c.Hit.Node), mesh.TagCube)
	}
	if gomath.Abs(c.Hit.Distance-3.75) > 0.05 {
		t.Errorf("distance = %v, want about 3.75", c.Hit.Distance)
	}
	// Looking level, the centre ray runs almost parallel to the floor.
	if c.OnFloor && c.Floor.Z < 0 {
		t.Errorf("floor hit at %v, want none or far ahead", c.Floor)
	}
}

func TestCrosshairFloor(t *testing.T) {
	g, d := newDemoGame(t, false)
	s := g.Scene()
	// Head tilted 45 degrees down.
	h := gomath.Sqrt2 / 2
	if err := s.SetOrientation(d.Head, math.Mat3{{1, 0, 0}, {0, h, -h}, {0, h, h}}); err != nil {
		t.Fatal(err)
	}
	c := g.Crosshair()
	if !c.OnFloor {
		t.Fatal("centre ray missed the floor")
	}
	if !c.Floor.ApproxEqual(math.V3(0, FloorLevel, -3), 0.1) {
		t.Errorf("floor hit = %v, want about (0,-1,-3)", c.Floor)
	}
	if !c.OnObject || gomath.Abs(c.Hit.Distance-gomath.Sqrt2) > 0.1 {
		t.Errorf("object hit = %+v, %v, want the floor mesh at about 1.41", c.Hit, c.OnObject)
	}
	g.LogCrosshair()
}

func TestCrosshairWithoutFloor(t *testing.T) {
	g := New(testConfig())
	s := g.Scene()
	cam := s.NewCamera("cam", 60, 48)
	s.Attach(s.Root(), cam)
	g.SetCamera(cam)
	if c := g.Crosshair(); c.OnObject || c.OnFloor {
		t.Errorf("Crosshair() = %+v in an empty scene", c)
	}
}

func TestCapture(t *testing.T) {
	g, _ := newDemoGame(t, false)
	if err := g.Step(0.016, nil); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	g.SetScreenshotDir(dir)
	for _, depth := range []bool{false, true} {
		name, err := g.Capture(depth)
		if err != nil {
			t.Fatalf("Capture(%v) error = %v", depth, err)
		}
		if filepath.Dir(name) != dir {
			t.Errorf("Capture(%v) wrote %s, want a file in %s", depth, name, dir)
		}
		if _, err := os.Stat(name); err != nil {
			t.Errorf("Capture(%v): %v", depth, err)
		}
	}
}

func TestSunPlacement(t *testing.T) {
	cfg := testConfig()
	g := New(cfg)
	d, err := BuildDemo(g.Scene(), DemoOptions{FOV: 60, Height: 48, Sun: true, SunLongitude: 30, SunLatitude: 45})
	if err != nil {
		t.Fatal(err)
	}
	up := g.Scene().Orientation(d.Sun).MulVec(math.Up)
	if want := lighting.SunDirection(30, 45); !up.ApproxEqual(want, 1e-9) {
		t.Errorf("sun up axis = %v, want %v", up, want)
	}
}
