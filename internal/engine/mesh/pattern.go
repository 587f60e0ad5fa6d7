package mesh

import (
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

func triangles(s *scene.Scene, mesh scene.NodeID) []*scene.Triangle {
	var out []*scene.Triangle
	for _, id := range s.DescendantsOfType(mesh, scene.TypeTriangle) {
		if n, ok := s.Node(id); ok {
			out = append(out, n.Triangle)
		}
	}
	return out
}

// SetPatternTriangles alternates flat colours c1 and c2 over the plane's
// triangles, giving each quad one triangle of each.
func SetPatternTriangles(s *scene.Scene, plane scene.NodeID, c1, c2 shade.Color) {
	for i, id := range s.ChildrenWithTag(plane, TagPlane) {
		n, _ := s.Node(id)
		c := c1
		if i%2 == 1 {
			c = c2
		}
		n.Triangle.Shading = scene.Flat{Color: c}
	}
}

// ToGradient gives every triangle in the mesh the corner colours c1, c2, c3.
func ToGradient(s *scene.Scene, mesh scene.NodeID, c1, c2, c3 shade.Color) {
	for _, t := range triangles(s, mesh) {
		t.Shading = scene.Gradient{Colors: [3]shade.Color{c1, c2, c3}}
	}
}

// ToFlat gives every triangle in the mesh the flat colour c.
func ToFlat(s *scene.Scene, mesh scene.NodeID, c shade.Color) {
	for _, t := range triangles(s, mesh) {
		t.Shading = scene.Flat{Color: c}
	}
}

// SetCubeTexture maps the whole texture onto every face of a cube built by
// NewCube and marks its triangles lit.
func SetCubeTexture(s *scene.Scene, cube scene.NodeID, tex *texture.Texture) {
	w := float64(tex.Width() - 1)
	h := float64(tex.Height() - 1)
	uvs := [2][3]math.Vec2{
		{math.V2(0, 0), math.V2(w, 0), math.V2(0, h)},
		{math.V2(w, h), math.V2(w, 0), math.V2(0, h)},
	}
	for i, id := range s.ChildrenWithTag(cube, TagCube) {
		n, _ := s.Node(id)
		n.Triangle.Shading = scene.Textured{Texture: tex, UV: uvs[i%2]}
		n.Triangle.Lit = true
	}
}

// SetPatternGradient shades the plane's triangles flat, blending from left
// at the plane's -X edge to right at its +X edge by triangle centroid.
func SetPatternGradient(s *scene.Scene, plane scene.NodeID, left, right shade.Color) {
	for _, id := range s.ChildrenWithTag(plane, TagPlane) {
		n, _ := s.Node(id)
		v := n.Triangle.Vertices
		t := (v[0].X+v[1].X+v[2].X)/3 + 0.5
		n.Triangle.Shading = scene.Flat{Color: left.Lerp(right, t)}
	}
}
