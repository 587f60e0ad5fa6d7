package scene

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

func (s *Scene) unlink(n *Node, id NodeID) {
	if p := s.get(n.parent); p != nil {
		if i := slices.Index(p.children, id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	n.parent = Nil
}

func (s *Scene) link(parent NodeID, childID NodeID) error {
	if childID == s.root {
		return fmt.Errorf("attach %s: %w", s.describe(childID), ErrRoot)
	}
	p := s.get(parent)
	c := s.get(childID)
	if p == nil || c == nil {
		return ErrInvalidNode
	}
	for a := parent; a != Nil; a = s.get(a).parent {
		if a == childID {
			return fmt.Errorf("attach %s under %s: %w", s.describe(childID), s.describe(parent), ErrCycle)
		}
	}
	if c.parent == parent {
		return nil
	}
	s.unlink(c, childID)
	c.parent = parent
	if !slices.Contains(p.children, childID) {
		p.children = append(p.children, childID)
	}
	return nil
}

// Attach makes child the last child of parent, first unlinking it from any
// current parent. The child keeps its absolute pose, so its pose relative to
// the new parent changes. Attaching to the current parent is a no-op.
func (s *Scene) Attach(parent, child NodeID) error {
	return s.link(parent, child)
}

// AttachRelative links child under parent and then reinterprets the child's
// current position and orientation as relative to parent, moving it (and its
// subtree) into the parent's frame.
func (s *Scene) AttachRelative(parent, child NodeID) error {
	c := s.get(child)
	if c == nil {
		return ErrInvalidNode
	}
	pos, orient := c.position, c.orientation
	if err := s.link(parent, child); err != nil {
		return err
	}
	if err := s.SetPositionRelative(child, pos); err != nil {
		return err
	}
	return s.SetOrientationRelative(child, orient)
}

// Detach promotes the node's children to its former parent, keeping their
// absolute poses, then unlinks the node so it becomes standalone. Detaching
// the root is refused.
func (s *Scene) Detach(id NodeID) error {
	if id == s.root {
		s.log.Warn("refusing to detach root")
		return ErrRoot
	}
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	parent := n.parent
	p := s.get(parent)
	for _, c := range n.children {
		s.get(c).parent = parent
		if p != nil {
			p.children = append(p.children, c)
		}
	}
	n.children = nil
	s.unlink(n, id)
	return nil
}

// Destroy detaches the node, promoting its children, and frees its slot.
func (s *Scene) Destroy(id NodeID) error {
	if id == s.root {
		s.log.Warn("refusing to destroy root")
		return ErrRoot
	}
	if err := s.Detach(id); err != nil {
		return err
	}
	s.release(id)
	return nil
}

// DestroySubtree frees the node and all of its descendants.
func (s *Scene) DestroySubtree(id NodeID) error {
	if id == s.root {
		s.log.Warn("refusing to destroy root subtree")
		return ErrRoot
	}
	n := s.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	s.unlink(n, id)

	var doomed []NodeID
	s.each(id, func(n *Node) {
		doomed = append(doomed, n.children...)
	})
	doomed = append(doomed, id)
	for _, d := range doomed {
		s.release(d)
	}
	s.log.Debug("destroyed subtree", zap.Int("nodes", len(doomed)))
	return nil
}

func (s *Scene) describe(id NodeID) string {
	if n := s.get(id); n != nil {
		return fmt.Sprintf("%s(%d)", n.Name, id.index())
	}
	return fmt.Sprintf("invalid(%d)", id.index())
}
