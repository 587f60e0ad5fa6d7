package scene

import (
	"github.com/Faultbox/yeentooth/pkg/math"
)

// WorldVertices returns a triangle's vertices in world space:
// orientation*v + position. ok is false if id is not a triangle.
func (s *Scene) WorldVertices(id NodeID) (v [3]math.Vec3, ok bool) {
	n := s.get(id)
	if n == nil || n.Triangle == nil {
		return v, false
	}
	return n.WorldVertices(), true
}

// WorldVertices returns the triangle's vertices in world space. It must only
// be called on triangle nodes.
func (n *Node) WorldVertices() [3]math.Vec3 {
	var out [3]math.Vec3
	for i, v := range n.Triangle.Vertices {
		out[i] = n.orientation.MulVec(v).Add(n.position)
	}
	return out
}

// Normal returns the unit world-space normal of a triangle,
// normalize(orientation * cross(v1-v0, v2-v0)). Degenerate triangles and
// non-triangles yield the zero vector.
func (s *Scene) Normal(id NodeID) math.Vec3 {
	n := s.get(id)
	if n == nil || n.Triangle == nil {
		return math.Vec3{}
	}
	return n.Normal()
}

// Normal returns the unit world-space normal of a triangle node.
func (n *Node) Normal() math.Vec3 {
	v := n.Triangle.Vertices
	return n.orientation.MulVec(v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))).Normalize()
}

// LightDirectionAndDistance returns the direction from point toward the light
// and the distance between them. Directional lights return orientation*up
// with distance 1.
func (s *Scene) LightDirectionAndDistance(id NodeID, point math.Vec3) (math.Vec3, float64) {
	n := s.get(id)
	if n == nil || n.Light == nil {
		return math.Vec3{}, 0
	}
	return n.LightDirectionAndDistance(point)
}

// LightDirectionAndDistance is the node form of
// Scene.LightDirectionAndDistance. It must only be called on light nodes.
func (n *Node) LightDirectionAndDistance(point math.Vec3) (math.Vec3, float64) {
	if n.Light.Kind == DirectionalLight {
		return n.orientation.MulVec(math.Up), 1
	}
	d := n.position.Sub(point)
	return d.Normalize(), d.Length()
}
