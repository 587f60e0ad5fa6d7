package scene

import (
	"slices"
)

// AddTag adds tag to the node if not already present.
func (s *Scene) AddTag(id NodeID, tag string) {
	if n := s.get(id); n != nil && !slices.Contains(n.tags, tag) {
		n.tags = append(n.tags, tag)
	}
}

// RemoveTag removes tag from the node.
func (s *Scene) RemoveTag(id NodeID, tag string) {
	if n := s.get(id); n != nil {
		if i := slices.Index(n.tags, tag); i >= 0 {
			n.tags = slices.Delete(n.tags, i, i+1)
		}
	}
}

// HasTag reports whether the node carries tag.
func (s *Scene) HasTag(id NodeID, tag string) bool {
	n := s.get(id)
	return n != nil && n.HasTag(tag)
}

// Tags returns a copy of the node's tags.
func (s *Scene) Tags(id NodeID) []string {
	if n := s.get(id); n != nil {
		return slices.Clone(n.tags)
	}
	return nil
}

func (s *Scene) filterChildren(id NodeID, keep func(*Node) bool) []NodeID {
	n := s.get(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	for _, c := range n.children {
		if keep(s.get(c)) {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenWithTag returns the direct children carrying tag, in child order.
func (s *Scene) ChildrenWithTag(id NodeID, tag string) []NodeID {
	return s.filterChildren(id, func(n *Node) bool { return n.HasTag(tag) })
}

// ChildrenOfType returns the direct children of type t, in child order.
func (s *Scene) ChildrenOfType(id NodeID, t NodeType) []NodeID {
	return s.filterChildren(id, func(n *Node) bool { return n.Type == t })
}

func (s *Scene) filterDescendants(id NodeID, keep func(*Node) bool) []NodeID {
	var out []NodeID
	s.Walk(id, func(cur NodeID, n *Node) bool {
		if cur != id && keep(n) {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// DescendantsWithTag returns every node below id carrying tag, depth-first
// pre-order. The node itself is not included.
func (s *Scene) DescendantsWithTag(id NodeID, tag string) []NodeID {
	return s.filterDescendants(id, func(n *Node) bool { return n.HasTag(tag) })
}

// DescendantsOfType returns every node below id of type t, depth-first
// pre-order. The node itself is not included.
func (s *Scene) DescendantsOfType(id NodeID, t NodeType) []NodeID {
	return s.filterDescendants(id, func(n *Node) bool { return n.Type == t })
}

// Walk visits id and its descendants depth-first pre-order, in child order.
// Returning false from fn skips the visited node's subtree.
func (s *Scene) Walk(id NodeID, fn func(id NodeID, n *Node) bool) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := s.get(cur)
		if n == nil || !fn(cur, n) {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
