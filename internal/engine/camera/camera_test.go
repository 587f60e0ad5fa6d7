package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

func setup(t *testing.T) (*scene.Scene, *FlyController) {
	t.Helper()
	s := scene.New()
	body := s.NewNode("player")
	head := s.NewCamera("camera", 60, 96)
	if err := s.Attach(s.Root(), body); err != nil {
		t.Fatal(err)
	}
	if err := s.Attach(body, head); err != nil {
		t.Fatal(err)
	}
	return s, NewFlyController(body, head)
}

func TestMoveForward(t *testing.T) {
	s, c := setup(t)
	if err := c.Move(s, 0.5, Intent{Move: math.V3(0, 0, 10)}); err != nil {
		t.Fatal(err)
	}
	if got := s.Position(c.Body); !got.ApproxEqual(math.V3(0, 0, 2), 1e-12) {
		t.Errorf("body Position() = %v, want (0,0,2)", got)
	}
	if got := s.Position(c.Head); !got.ApproxEqual(math.V3(0, 0, 2), 1e-12) {
		t.Errorf("head Position() = %v, want it to follow the body", got)
	}
}

func TestNoInputNoMovement(t *testing.T) {
	s, c := setup(t)
	if err := c.Move(s, 1, Intent{}); err != nil {
		t.Fatal(err)
	}
	if got := s.Position(c.Body); got != (math.Vec3{}) {
		t.Errorf("body moved to %v", got)
	}
}

func TestYawTurnsMovement(t *testing.T) {
	s, c := setup(t)
	c.LookSpeed = gomath.Pi / 2
	if err := c.Move(s, 1, Intent{Yaw: 1}); err != nil {
		t.Fatal(err)
	}
	if err := c.Move(s, 0.25, Intent{Move: math.V3(0, 0, 1)}); err != nil {
		t.Fatal(err)
	}
	if got := s.Position(c.Body); !got.ApproxEqual(math.V3(1, 0, 0), 1e-12) {
		t.Errorf("body Position() = %v, want (1,0,0)", got)
	}
	if got := s.OrientationRelative(c.Head); !got.ApproxEqual(math.Identity3(), 1e-12) {
		t.Errorf("head relative orientation changed by yaw: %v", got)
	}
}

func TestPitchStopsAtVertical(t *testing.T) {
	for _, dir := range []float64{1, -1} {
		s, c := setup(t)
		for i := 0; i < 50; i++ {
			if err := c.Move(s, 0.1, Intent{Pitch: dir}); err != nil {
				t.Fatal(err)
			}
			if r := s.OrientationRelative(c.Head); r[2][2] < 0 {
				t.Fatalf("pitch %v: head flipped after %d steps: %v", dir, i, r)
			}
		}
		forward := s.Orientation(c.Head).MulVec(math.V3(0, 0, 1))
		if dir > 0 && forward.Y >= -0.9 {
			t.Errorf("looking down: forward = %v, want nearly straight down", forward)
		}
		if dir < 0 && forward.Y <= 0.9 {
			t.Errorf("looking up: forward = %v, want nearly straight up", forward)
		}
	}
}

func TestOrbit(t *testing.T) {
	s := scene.New()
	cam := s.NewCamera("camera", 60, 96)
	o := Orbit{Center: math.V3(1, 2, 3), Distance: 10, Yaw: 0.7, Pitch: 0.4}
	if err := o.Apply(s, cam); err != nil {
		t.Fatal(err)
	}
	pos := s.Position(cam)
	if d := pos.Distance(o.Center); gomath.Abs(d-10) > 1e-9 {
		t.Errorf("distance to centre = %v, want 10", d)
	}
	forward := s.Orientation(cam).MulVec(math.V3(0, 0, 1))
	toCenter := o.Center.Sub(pos).Normalize()
	if !forward.ApproxEqual(toCenter, 1e-9) {
		t.Errorf("camera looks along %v, want %v", forward, toCenter)
	}
	if pos.Y <= o.Center.Y {
		t.Errorf("positive pitch should place the camera above the centre, got %v", pos)
	}
}

func TestClampPitch(t *testing.T) {
	if got := ClampPitch(3); got >= gomath.Pi/2 {
		t.Errorf("ClampPitch(3) = %v", got)
	}
	if got := ClampPitch(0.3); got != 0.3 {
		t.Errorf("ClampPitch(0.3) = %v, want 0.3", got)
	}
}
