package mesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

var (
	black = shade.Black
	grey  = shade.RGB(108, 108, 108)
)

func TestNewPlane(t *testing.T) {
	s := scene.New()
	plane, err := NewPlane(s, [2]int{2, 3}, grey, true)
	if err != nil {
		t.Fatalf("NewPlane() error = %v", err)
	}
	tris := s.ChildrenWithTag(plane, TagPlane)
	if len(tris) != 12 {
		t.Fatalf("plane has %d triangles, want 12", len(tris))
	}
	for _, id := range tris {
		v, _ := s.WorldVertices(id)
		for _, p := range v {
			if p.Y != 0 || p.X < -0.5 || p.X > 0.5 || p.Z < -0.5 || p.Z > 0.5 {
				t.Fatalf("vertex %v outside the unit XZ square", p)
			}
		}
		n, _ := s.Node(id)
		if !n.Triangle.Lit {
			t.Error("triangle should be lit")
		}
		if n.Triangle.Shading != (scene.Flat{Color: grey}) {
			t.Errorf("Shading = %v, want flat grey", n.Triangle.Shading)
		}
	}
}

func TestNewPlaneRejectsBadResolution(t *testing.T) {
	s := scene.New()
	if _, err := NewPlane(s, [2]int{0, 3}, grey, false); err == nil {
		t.Error("NewPlane() with zero resolution should fail")
	}
}

func TestPlaneFollowsMeshPose(t *testing.T) {
	s := scene.New()
	plane, _ := NewPlane(s, [2]int{1, 1}, grey, false)
	s.SetOrientation(plane, math.Scale3(4))
	s.SetPosition(plane, math.V3(0, -1, 0))

	for _, id := range s.ChildrenWithTag(plane, TagPlane) {
		v, _ := s.WorldVertices(id)
		for _, p := range v {
			if p.Y != -1 || (p.X != -2 && p.X != 2) || (p.Z != -2 && p.Z != 2) {
				t.Errorf("vertex %v not on the scaled plane corners", p)
			}
		}
	}
}

func TestNewCubeFacesPointOutward(t *testing.T) {
	s := scene.New()
	cube, err := NewCube(s, grey, false)
	if err != nil {
		t.Fatalf("NewCube() error = %v", err)
	}
	tris := s.ChildrenWithTag(cube, TagCube)
	if len(tris) != 12 {
		t.Fatalf("cube has %d triangles, want 12", len(tris))
	}
	normals := map[math.Vec3]int{}
	for _, id := range tris {
		v, _ := s.WorldVertices(id)
		centroid := v[0].Add(v[1]).Add(v[2]).Scale(1.0 / 3)
		n := s.Normal(id)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %v normal %v points inward", v, n)
		}
		for _, p := range v {
			for _, c := range []float64{p.X, p.Y, p.Z} {
				if c != 0.5 && c != -0.5 {
					t.Fatalf("vertex %v is not a unit cube corner", p)
				}
			}
		}
		key := math.V3(round(n.X), round(n.Y), round(n.Z))
		normals[key]++
	}
	if len(normals) != 6 {
		t.Errorf("got %d distinct face normals, want 6: %v", len(normals), normals)
	}
	for n, count := range normals {
		if count != 2 {
			t.Errorf("face %v has %d triangles, want 2", n, count)
		}
	}
}

func round(v float64) float64 {
	switch {
	case v > 0.5:
		return 1
	case v < -0.5:
		return -1
	}
	return 0
}

func TestAddFace(t *testing.T) {
	s := scene.New()
	m := s.NewMesh("teapot")
	tex := texture.New("blawg", 4, 4, grey)
	uv := [3]math.Vec2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}
	verts := [3]math.Vec3{math.V3(0, 0, 0), math.V3(1, 0, 0), math.V3(0, 1, 0)}

	withUV, err := AddFace(s, m, Face{Vertices: verts, UV: &uv}, tex, black, true)
	if err != nil {
		t.Fatal(err)
	}
	withoutUV, err := AddFace(s, m, Face{Vertices: verts}, tex, black, true)
	if err != nil {
		t.Fatal(err)
	}
	noTexture, err := AddFace(s, m, Face{Vertices: verts, UV: &uv}, nil, black, false)
	if err != nil {
		t.Fatal(err)
	}

	n, _ := s.Node(withUV)
	if got, ok := n.Triangle.Shading.(scene.Textured); !ok || got.Texture != tex || got.UV != uv {
		t.Errorf("face with UVs Shading = %v, want textured", n.Triangle.Shading)
	}
	for _, id := range []scene.NodeID{withoutUV, noTexture} {
		n, _ := s.Node(id)
		if n.Triangle.Shading != (scene.Flat{Color: black}) {
			t.Errorf("fallback Shading = %v, want flat black", n.Triangle.Shading)
		}
		if !s.HasTag(id, TagFace) {
			t.Error("face triangle missing tag")
		}
	}
}

func TestAddFaces(t *testing.T) {
	s := scene.New()
	faces := []Face{
		{Vertices: [3]math.Vec3{math.V3(0, 0, 0), math.V3(1, 0, 0), math.V3(0, 1, 0)}},
		{Vertices: [3]math.Vec3{math.V3(0, 0, 1), math.V3(1, 0, 1), math.V3(0, 1, 1)}},
	}
	m, err := AddFaces(s, faces, nil, grey, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.ChildrenOfType(m, scene.TypeTriangle)); got != 2 {
		t.Errorf("mesh has %d triangles, want 2", got)
	}
}

func TestAddFaceInvalidMesh(t *testing.T) {
	s := scene.New()
	m := s.NewMesh("gone")
	if err := s.Destroy(m); err != nil {
		t.Fatal(err)
	}
	before := s.Len()

	verts := [3]math.Vec3{math.V3(0, 0, 0), math.V3(1, 0, 0), math.V3(0, 1, 0)}
	id, err := AddFace(s, m, Face{Vertices: verts}, nil, grey, false)
	if !errors.Is(err, scene.ErrInvalidNode) {
		t.Errorf("AddFace() error = %v, want ErrInvalidNode", err)
	}
	if id != scene.Nil {
		t.Errorf("AddFace() = %v, want Nil", id)
	}
	if s.Len() != before {
		t.Errorf("Len() = %d after failed AddFace, want %d", s.Len(), before)
	}
}

func TestSetPatternTriangles(t *testing.T) {
	s := scene.New()
	plane, _ := NewPlane(s, [2]int{2, 2}, grey, false)
	SetPatternTriangles(s, plane, black, grey)
	for i, id := range s.ChildrenWithTag(plane, TagPlane) {
		n, _ := s.Node(id)
		want := black
		if i%2 == 1 {
			want = grey
		}
		if n.Triangle.Shading != (scene.Flat{Color: want}) {
			t.Errorf("triangle %d Shading = %v, want %v", i, n.Triangle.Shading, want)
		}
	}
}

func TestSetPatternGradient(t *testing.T) {
	s := scene.New()
	plane, _ := NewPlane(s, [2]int{4, 1}, grey, false)
	SetPatternGradient(s, plane, black, shade.White)
	tris := s.ChildrenWithTag(plane, TagPlane)
	first, _ := s.Node(tris[0])
	last, _ := s.Node(tris[len(tris)-1])
	a := first.Triangle.Shading.(scene.Flat).Color
	b := last.Triangle.Shading.(scene.Flat).Color
	if a.R >= b.R {
		t.Errorf("gradient does not brighten towards +X: %v then %v", a, b)
	}
}

func TestToGradientAndFlat(t *testing.T) {
	s := scene.New()
	cube, _ := NewCube(s, grey, false)
	c1, c2, c3 := shade.RGB(248, 54, 119), shade.RGB(58, 244, 189), shade.RGB(229, 249, 54)

	ToGradient(s, cube, c1, c2, c3)
	for _, id := range s.DescendantsOfType(cube, scene.TypeTriangle) {
		n, _ := s.Node(id)
		if n.Triangle.Shading != (scene.Gradient{Colors: [3]shade.Color{c1, c2, c3}}) {
			t.Fatalf("Shading = %v, want gradient", n.Triangle.Shading)
		}
	}

	ToFlat(s, cube, black)
	for _, id := range s.DescendantsOfType(cube, scene.TypeTriangle) {
		n, _ := s.Node(id)
		if n.Triangle.Shading != (scene.Flat{Color: black}) {
			t.Fatalf("Shading = %v, want flat black", n.Triangle.Shading)
		}
	}
}

func TestSetCubeTexture(t *testing.T) {
	s := scene.New()
	cube, _ := NewCube(s, grey, false)
	tex := texture.New("crate", 8, 4, grey)
	SetCubeTexture(s, cube, tex)

	for i, id := range s.ChildrenWithTag(cube, TagCube) {
		n, _ := s.Node(id)
		sh, ok := n.Triangle.Shading.(scene.Textured)
		if !ok || sh.Texture != tex {
			t.Fatalf("triangle %d Shading = %v, want textured", i, n.Triangle.Shading)
		}
		if !n.Triangle.Lit {
			t.Errorf("triangle %d should be lit", i)
		}
		if i%2 == 1 && sh.UV[0] != math.V2(7, 3) {
			t.Errorf("triangle %d UV[0] = %v, want (7,3)", i, sh.UV[0])
		}
	}
}
