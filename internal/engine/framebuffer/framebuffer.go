// Package framebuffer provides the software render target: a colour grid
// and a depth grid of the same resolution.
package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Faultbox/yeentooth/internal/engine/shade"
)

// DefaultDepthClear is the depth sentinel written by Clear before a frame.
const DefaultDepthClear = 1024.0

// Framebuffer holds per-pixel colour and depth, both row-major.
type Framebuffer struct {
	width  int
	height int
	color  []shade.Color
	depth  []float64
}

// New creates a framebuffer with the given logical resolution. Dimensions
// below one are raised to one.
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates both grids if the dimensions changed. Contents are
// undefined until the next Clear.
func (fb *Framebuffer) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width = width
	fb.height = height
	fb.color = make([]shade.Color, width*height)
	fb.depth = make([]float64, width*height)
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Clear fills the colour grid with bg and the depth grid with depth.
func (fb *Framebuffer) Clear(bg shade.Color, depth float64) {
	for i := range fb.color {
		fb.color[i] = bg
		fb.depth[i] = depth
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// Plot writes c and depth at (x, y) if depth is less than or equal to the
// stored depth, so that of equal-depth fragments the last one drawn wins.
// Colour and depth are updated together. It reports whether the pixel was
// written.
func (fb *Framebuffer) Plot(x, y int, depth float64, c shade.Color) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	i := y*fb.width + x
	if depth > fb.depth[i] {
		return false
	}
	fb.color[i] = c
	fb.depth[i] = depth
	return true
}

// ColorAt returns the colour at (x, y).
func (fb *Framebuffer) ColorAt(x, y int) shade.Color {
	return fb.color[y*fb.width+x]
}

// DepthAt returns the depth at (x, y).
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	return fb.depth[y*fb.width+x]
}

// Image copies the colour grid into a new RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.color[y*fb.width+x].RGBA())
		}
	}
	return img
}

// DepthImage renders the depth grid as greyscale, brightness = depth*scale
// clamped to [0, 255]. Near surfaces are dark.
func (fb *Framebuffer) DepthImage(scale float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			v := math.Max(0, math.Min(255, fb.depth[y*fb.width+x]*scale))
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// BlitTo copies every logical pixel as a block.X by block.Y rectangle onto
// dst, with the framebuffer's top-left corner placed at offset.
func (fb *Framebuffer) BlitTo(dst draw.Image, offset, block image.Point) {
	block.X = max(block.X, 1)
	block.Y = max(block.Y, 1)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r := image.Rect(0, 0, block.X, block.Y).Add(image.Pt(offset.X+x*block.X, offset.Y+y*block.Y))
			draw.Draw(dst, r, image.NewUniform(fb.color[y*fb.width+x].RGBA()), image.Point{}, draw.Src)
		}
	}
}
