package renderer

import (
	gomath "math"

	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/scene"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// attr holds the interpolated per-vertex shading inputs.
type attr struct {
	color shade.Color
	uv    math.Vec2
}

func (a attr) lerp(b attr, t float64) attr {
	return attr{color: a.color.Mix(b.color, t), uv: a.uv.Lerp(b.uv, t)}
}

type paintMode uint8

const (
	paintFlat paintMode = iota
	paintGradient
	paintTexture
)

// painter turns interpolated attributes into a pixel colour.
type painter struct {
	mode  paintMode
	flat  shade.Color
	tex   *texture.Texture
	light *shade.Color
}

// newPainter resolves the shading union and seeds the vertex attributes.
// Gradient corners are overlaid with the light once, flat colour once, and
// texels per pixel.
func newPainter(sh scene.Shading, light *shade.Color, verts *[3]vertex) painter {
	switch sh := sh.(type) {
	case scene.Gradient:
		for i := range verts {
			c := sh.Colors[i]
			if light != nil {
				c = shade.Overlay(c, *light)
			}
			verts[i].attr.color = c
		}
		return painter{mode: paintGradient}
	case scene.Textured:
		if sh.Texture == nil {
			break
		}
		for i := range verts {
			verts[i].attr.uv = sh.UV[i]
		}
		return painter{mode: paintTexture, tex: sh.Texture, light: light}
	case scene.Flat:
		c := sh.Color
		if light != nil {
			c = shade.Overlay(c, *light)
		}
		return painter{mode: paintFlat, flat: c}
	}
	return painter{mode: paintFlat, flat: shade.Black}
}

func (p painter) paint(a attr) shade.Color {
	switch p.mode {
	case paintGradient:
		return a.color
	case paintTexture:
		c := p.tex.At(int(gomath.Floor(a.uv.X)), int(gomath.Floor(a.uv.Y)))
		if p.light != nil {
			c = shade.Overlay(c, *p.light)
		}
		return c
	default:
		return p.flat
	}
}
