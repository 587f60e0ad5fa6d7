package lighting

import (
	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Ambient is the base light every lit triangle receives.
var Ambient = shade.RGB(10, 10, 10)

// MinDistance is the distance at or below which a light saturates to white.
const MinDistance = 0.1

// Buffer holds the lights gathered for one frame.
type Buffer struct {
	lights []*scene.Node
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{lights: make([]*scene.Node, 0, 8)}
}

// Clear removes all lights.
func (b *Buffer) Clear() {
	b.lights = b.lights[:0]
}

// Len returns the number of collected lights.
func (b *Buffer) Len() int {
	return len(b.lights)
}

// Collect replaces the buffer contents with every light below root.
func (b *Buffer) Collect(s *scene.Scene, root scene.NodeID) {
	b.Clear()
	for _, id := range s.DescendantsOfType(root, scene.TypeLight) {
		if n, ok := s.Node(id); ok {
			b.lights = append(b.lights, n)
		}
	}
}

// Cast returns the light falling on a triangle with unit normal n and world
// vertices v. Every light is sampled at the centroid and the contributions
// are added to Ambient with per-channel clamping.
func (b *Buffer) Cast(n math.Vec3, v [3]math.Vec3) shade.Color {
	centroid := v[0].Add(v[1]).Add(v[2]).Scale(1.0 / 3)

	casts := make([]shade.Color, 0, len(b.lights)+1)
	casts = append(casts, Ambient)
	for _, l := range b.lights {
		casts = append(casts, contribution(l, n, centroid))
	}
	return shade.Add(casts...)
}

func contribution(l *scene.Node, n, point math.Vec3) shade.Color {
	dir, dist := l.LightDirectionAndDistance(point)
	if dist <= MinDistance {
		return shade.White
	}
	falloff := dist / l.Light.Brightness
	intensity := (1 / (falloff * falloff)) * ((n.Dot(dir) + 1) / 2)
	return shade.Black.Lerp(l.Light.Color, intensity)
}
