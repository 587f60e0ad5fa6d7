package scene

import (
	"github.com/Faultbox/yeentooth/pkg/math"
)

// each applies fn to id and every descendant using an explicit stack.
func (s *Scene) each(id NodeID, fn func(n *Node)) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := s.get(cur)
		if n == nil {
			continue
		}
		fn(n)
		stack = append(stack, n.children...)
	}
}

// parentPose returns the parent's absolute pose, or the identity pose when
// the node has no parent.
func (s *Scene) parentPose(n *Node) (math.Vec3, math.Mat3) {
	if p := s.get(n.parent); p != nil {
		return p.position, p.orientation
	}
	return math.Vec3{}, math.Identity3()
}

// Position returns the absolute position, or the zero vector for an invalid
// handle.
func (s *Scene) Position(id NodeID) math.Vec3 {
	if n := s.get(id); n != nil {
		return n.position
	}
	return math.Vec3{}
}

// Orientation returns the absolute orientation, or the identity for an
// invalid handle.
func (s *Scene) Orientation(id NodeID) math.Mat3 {
	if n := s.get(id); n != nil {
		return n.orientation
	}
	return math.Identity3()
}

// Translate moves the node and all its descendants by d.
func (s *Scene) Translate(id NodeID, d math.Vec3) error {
	if s.get(id) == nil {
		return ErrInvalidNode
	}
	s.each(id, func(n *Node) {
		n.position = n.position.Add(d)
	})
	return nil
}

// SetPosition moves the node to p, carrying its descendants along.
func (s *Scene) SetPosition(id NodeID, p math.Vec3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	return s.Translate(id, p.Sub(n.position))
}

// PositionRelative returns the position expressed in the parent's frame.
func (s *Scene) PositionRelative(id NodeID) math.Vec3 {
	n := s.get(id)
	if n == nil {
		return math.Vec3{}
	}
	pp, po := s.parentPose(n)
	return po.Inverse().MulVec(n.position.Sub(pp))
}

// SetPositionRelative places the node at p in its parent's frame.
func (s *Scene) SetPositionRelative(id NodeID, p math.Vec3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	pp, po := s.parentPose(n)
	return s.SetPosition(id, po.MulVec(p).Add(pp))
}

// TranslateRelative moves the node by v expressed in the parent's frame.
func (s *Scene) TranslateRelative(id NodeID, v math.Vec3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	_, po := s.parentPose(n)
	return s.Translate(id, po.MulVec(v))
}

// SetOrientation sets the absolute orientation, pivoting about the node's own
// position.
func (s *Scene) SetOrientation(id NodeID, target math.Mat3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	return s.SetOrientationAbout(id, target, n.position)
}

// SetOrientationAbout sets the absolute orientation to target. With
// T = target * inverse(current), the node's position is moved to
// T*(position-pivot)+pivot and every descendant is distorted by T about the
// same pivot.
func (s *Scene) SetOrientationAbout(id NodeID, target math.Mat3, pivot math.Vec3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	t := target.Mul(n.orientation.Inverse())
	n.orientation = target
	n.position = t.MulVec(n.position.Sub(pivot)).Add(pivot)
	for _, c := range n.children {
		s.distort(c, t, pivot)
	}
	return nil
}

// Distort applies t to the node's orientation, pivoting about its own
// position.
func (s *Scene) Distort(id NodeID, t math.Mat3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	s.distort(id, t, n.position)
	return nil
}

// DistortAbout applies t to the node and its descendants about pivot.
func (s *Scene) DistortAbout(id NodeID, t math.Mat3, pivot math.Vec3) error {
	if s.get(id) == nil {
		return ErrInvalidNode
	}
	s.distort(id, t, pivot)
	return nil
}

func (s *Scene) distort(id NodeID, t math.Mat3, pivot math.Vec3) {
	s.each(id, func(n *Node) {
		n.orientation = t.Mul(n.orientation)
		n.position = t.MulVec(n.position.Sub(pivot)).Add(pivot)
	})
}

// OrientationRelative returns the orientation expressed in the parent's
// frame.
func (s *Scene) OrientationRelative(id NodeID) math.Mat3 {
	n := s.get(id)
	if n == nil {
		return math.Identity3()
	}
	_, po := s.parentPose(n)
	return po.Inverse().Mul(n.orientation)
}

// SetOrientationRelative sets the orientation to r in the parent's frame.
func (s *Scene) SetOrientationRelative(id NodeID, r math.Mat3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	_, po := s.parentPose(n)
	return s.SetOrientation(id, po.Mul(r))
}

// DistortRelative applies r expressed in the parent's frame, i.e. the
// absolute distortion parent * r * inverse(parent).
func (s *Scene) DistortRelative(id NodeID, r math.Mat3) error {
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	_, po := s.parentPose(n)
	s.distort(id, po.Mul(r).Mul(po.Inverse()), n.position)
	return nil
}

// RotateEuler rotates the node about its own origin by Euler angles in
// radians. The rotation about Y is applied first, then X, then Z.
func (s *Scene) RotateEuler(id NodeID, x, y, z float64) error {
	return s.DistortRelative(id, math.EulerRotation(x, y, z))
}
