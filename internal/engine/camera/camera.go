// Package camera drives camera nodes: a first-person fly controller and a
// fixed orbit placement.
package camera

import (
	gomath "math"

	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Intent is one frame of abstract control input.
type Intent struct {
	// Move is the desired direction in the body's frame: +X right, +Y up,
	// +Z forward. Only its direction matters.
	Move math.Vec3
	// Yaw turns the body; positive turns right.
	Yaw float64
	// Pitch tilts the head; positive looks down.
	Pitch float64
}

// FlyController moves a body node and pitches a head node attached to it,
// usually the camera.
type FlyController struct {
	Body scene.NodeID
	Head scene.NodeID

	MoveSpeed float64 // units per second
	LookSpeed float64 // radians per second
}

// NewFlyController creates a controller with the default speeds.
func NewFlyController(body, head scene.NodeID) *FlyController {
	return &FlyController{
		Body:      body,
		Head:      head,
		MoveSpeed: 4,
		LookSpeed: 2,
	}
}

// Move applies one frame of input scaled by dt seconds. Movement follows the
// body's facing. A pitch step that would turn the head past vertical is
// undone.
func (c *FlyController) Move(s *scene.Scene, dt float64, in Intent) error {
	step := in.Move.SetLength(c.MoveSpeed * dt)
	if err := s.Translate(c.Body, s.Orientation(c.Body).MulVec(step)); err != nil {
		return err
	}

	if in.Yaw != 0 {
		if err := s.RotateEuler(c.Body, 0, in.Yaw*c.LookSpeed*dt, 0); err != nil {
			return err
		}
	}

	if in.Pitch != 0 {
		turn := in.Pitch * c.LookSpeed * dt
		if err := s.RotateEuler(c.Head, turn, 0, 0); err != nil {
			return err
		}
		if s.OrientationRelative(c.Head)[2][2] < 0 {
			return s.RotateEuler(c.Head, -turn, 0, 0)
		}
	}
	return nil
}

// Orbit places a camera on a sphere around Center, looking at it.
type Orbit struct {
	Center   math.Vec3
	Distance float64
	Yaw      float64 // radians about Y
	Pitch    float64 // radians, positive looks down
}

// Forward returns the unit viewing direction.
func (o Orbit) Forward() math.Vec3 {
	return o.Orientation().MulVec(math.V3(0, 0, 1))
}

// Orientation returns the camera orientation for the orbit angles.
func (o Orbit) Orientation() math.Mat3 {
	return math.RotationY(o.Yaw).Mul(math.RotationX(o.Pitch))
}

// Position returns the camera position.
func (o Orbit) Position() math.Vec3 {
	return o.Center.Sub(o.Forward().Scale(o.Distance))
}

// Apply sets node's absolute pose to the orbit pose.
func (o Orbit) Apply(s *scene.Scene, node scene.NodeID) error {
	if err := s.SetOrientation(node, o.Orientation()); err != nil {
		return err
	}
	return s.SetPosition(node, o.Position())
}

// ClampPitch limits pitch to just short of straight up or down.
func ClampPitch(pitch float64) float64 {
	const limit = gomath.Pi/2 - 0.01
	return max(-limit, min(limit, pitch))
}
