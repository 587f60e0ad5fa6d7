// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/yeentooth/internal/engine/debug"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

const epsilon = 1e-9

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay returns the world-space ray through the centre of pixel
// (px, py) of a width x height frame seen from cam. It inverts the
// renderer's projection.
func ScreenToRay(cam *scene.Node, px, py, width, height int) Ray {
	k := cam.Camera.K
	dir := math.V3(
		(float64(px)+0.5-float64(width)/2)*k,
		-(float64(py)+0.5-float64(height)/2)*k,
		1,
	)
	return Ray{
		Origin:    cam.Position(),
		Direction: cam.Orientation().MulVec(dir).Normalize(),
	}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float64) (x, z float64, ok bool) {
	if gomath.Abs(r.Direction.Y) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box debug.AABB) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance to the triangle v along the ray.
// Both faces are hit; hits behind the origin are not.
func (r Ray) IntersectTriangle(v [3]math.Vec3) (t float64, hit bool) {
	e1 := v[1].Sub(v[0])
	e2 := v[2].Sub(v[0])
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if gomath.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(v[0])
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	w := r.Direction.Dot(q) * inv
	if w < 0 || u+w > 1 {
		return 0, false
	}
	t = e2.Dot(q) * inv
	if t <= epsilon {
		return 0, false
	}
	return t, true
}

// Hit is the nearest triangle along a ray.
type Hit struct {
	Node     scene.NodeID
	Distance float64
	Point    math.Vec3
}

// boundsPad widens mesh bounds so flat meshes keep a volume.
const boundsPad = 1e-6

// Cast returns the nearest triangle reachable from the scene root that the
// ray crosses. Meshes whose bounds the ray misses are skipped whole.
func Cast(s *scene.Scene, r Ray) (hit Hit, ok bool) {
	hit.Distance = gomath.Inf(1)
	pad := math.V3(boundsPad, boundsPad, boundsPad)
	s.Walk(s.Root(), func(id scene.NodeID, n *scene.Node) bool {
		if n.Type == scene.TypeMesh {
			box, found := debug.Bounds(s, id)
			if !found {
				return false
			}
			box.Min, box.Max = box.Min.Sub(pad), box.Max.Add(pad)
			_, crossed := r.IntersectAABB(box)
			return crossed
		}
		if n.Triangle == nil {
			return true
		}
		if t, crossed := r.IntersectTriangle(n.WorldVertices()); crossed && t < hit.Distance {
			hit = Hit{Node: id, Distance: t}
			ok = true
		}
		return true
	})
	if !ok {
		return Hit{}, false
	}
	hit.Point = r.At(hit.Distance)
	return hit, true
}

// Pick returns the triangle drawn at pixel (px, py) of a width x height frame
// rendered from camera. ok is false for background pixels or when camera is
// not a camera node.
func Pick(s *scene.Scene, camera scene.NodeID, px, py, width, height int) (Hit, bool) {
	cam, ok := s.Node(camera)
	if !ok || cam.Camera == nil {
		return Hit{}, false
	}
	return Cast(s, ScreenToRay(cam, px, py, width, height))
}
