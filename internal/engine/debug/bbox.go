package debug

import (
	gomath "math"

	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max math.Vec3
}

// Center returns the box centre.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the diagonal.
func (b AABB) Radius() float64 {
	return b.Size().Length() / 2
}

// Bounds returns the box around every triangle vertex at or below id. ok is
// false when the subtree holds no triangles.
func Bounds(s *scene.Scene, id scene.NodeID) (box AABB, ok bool) {
	inf := gomath.Inf(1)
	box = AABB{Min: math.V3(inf, inf, inf), Max: math.V3(-inf, -inf, -inf)}
	s.Walk(id, func(_ scene.NodeID, n *scene.Node) bool {
		if n.Triangle == nil {
			return true
		}
		ok = true
		for _, v := range n.WorldVertices() {
			box.Min = math.V3(min(box.Min.X, v.X), min(box.Min.Y, v.Y), min(box.Min.Z, v.Z))
			box.Max = math.V3(max(box.Max.X, v.X), max(box.Max.Y, v.Y), max(box.Max.Z, v.Z))
		}
		return true
	})
	if !ok {
		return AABB{}, false
	}
	return box, true
}
