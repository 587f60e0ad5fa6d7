// Package mesh builds triangle meshes in a scene: planes, cubes and meshes
// assembled face by face from loaded geometry.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Triangle tags set by the builders.
const (
	TagPlane = "PlaneTri"
	TagCube  = "CubeTri"
	TagFace  = "MeshTri"
)

// Face is one triangle of loaded geometry. UV is nil when the source has no
// texture coordinates.
type Face struct {
	Vertices [3]math.Vec3
	UV       *[3]math.Vec2
}

// addTriangle creates a triangle in the mesh's frame: vertices and identity
// pose are taken relative to the mesh.
func addTriangle(s *scene.Scene, mesh scene.NodeID, tri scene.Triangle, tag string) (scene.NodeID, error) {
	id := s.NewTriangle(tri, tag)
	if err := s.AttachRelative(mesh, id); err != nil {
		return scene.Nil, errors.Join(fmt.Errorf("add triangle to mesh: %w", err), s.Destroy(id))
	}
	return id, nil
}

// NewPlane builds a unit square in the XZ plane centred on the origin, split
// into res.X by res.Y quads of two triangles each.
func NewPlane(s *scene.Scene, res [2]int, color shade.Color, lit bool) (scene.NodeID, error) {
	if res[0] < 1 || res[1] < 1 {
		return scene.Nil, fmt.Errorf("plane resolution %dx%d must be positive", res[0], res[1])
	}
	plane := s.NewMesh("plane")
	w := 1 / float64(res[0])
	h := 1 / float64(res[1])
	for i := 0; i < res[0]; i++ {
		for j := 0; j < res[1]; j++ {
			x := -0.5 + w*float64(i)
			z := -0.5 + h*float64(j)
			quad := [2][3]math.Vec3{
				{math.V3(x, 0, z), math.V3(x, 0, z+h), math.V3(x+w, 0, z)},
				{math.V3(x+w, 0, z+h), math.V3(x+w, 0, z), math.V3(x, 0, z+h)},
			}
			for _, v := range quad {
				tri := scene.Triangle{Vertices: v, Shading: scene.Flat{Color: color}, Lit: lit}
				if _, err := addTriangle(s, plane, tri, TagPlane); err != nil {
					return scene.Nil, err
				}
			}
		}
	}
	return plane, nil
}

// NewCube builds a unit cube centred on the origin from 12 triangles, two
// per face. Faces are emitted front, then rotated about Y three times, then
// top and bottom.
func NewCube(s *scene.Scene, color shade.Color, lit bool) (scene.NodeID, error) {
	cube := s.NewMesh("cube")
	front := [2][3]math.Vec3{
		{math.V3(-0.5, -0.5, 0.5), math.V3(0.5, -0.5, 0.5), math.V3(-0.5, 0.5, 0.5)},
		{math.V3(0.5, 0.5, 0.5), math.V3(-0.5, 0.5, 0.5), math.V3(0.5, -0.5, 0.5)},
	}
	quarterY := math.Mat3{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	halfX := math.Mat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}

	var rotations []math.Mat3
	r := math.Identity3()
	for i := 0; i < 4; i++ {
		rotations = append(rotations, r)
		r = r.Mul(quarterY)
	}
	r = math.Mat3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	for i := 0; i < 2; i++ {
		rotations = append(rotations, r)
		r = r.Mul(halfX)
	}

	for _, rot := range rotations {
		for _, f := range front {
			var v [3]math.Vec3
			for k := range f {
				v[k] = rot.MulVec(f[k])
			}
			tri := scene.Triangle{Vertices: v, Shading: scene.Flat{Color: color}, Lit: lit}
			if _, err := addTriangle(s, cube, tri, TagCube); err != nil {
				return scene.Nil, err
			}
		}
	}
	return cube, nil
}

// AddFace adds one face under parent. Faces with UVs are textured with tex
// when tex is non-nil; otherwise the triangle is flat shaded with fallback.
func AddFace(s *scene.Scene, parent scene.NodeID, f Face, tex *texture.Texture, fallback shade.Color, lit bool) (scene.NodeID, error) {
	tri := scene.Triangle{Vertices: f.Vertices, Lit: lit}
	if f.UV != nil && tex != nil {
		tri.Shading = scene.Textured{Texture: tex, UV: *f.UV}
	} else {
		tri.Shading = scene.Flat{Color: fallback}
	}
	return addTriangle(s, parent, tri, TagFace)
}

// AddFaces adds every face under a new mesh node.
func AddFaces(s *scene.Scene, faces []Face, tex *texture.Texture, fallback shade.Color, lit bool) (scene.NodeID, error) {
	m := s.NewMesh("mesh")
	for i, f := range faces {
		if _, err := AddFace(s, m, f, tex, fallback, lit); err != nil {
			return scene.Nil, fmt.Errorf("face %d: %w", i, err)
		}
	}
	return m, nil
}
