// Package shade provides the RGB colour type used by the rasterizer and the
// blend operations applied to albedo and light.
package shade

import (
	"image/color"
	"math"
)

// Color is an RGB triple with channels in [0, 255]. Channels are kept as
// float64 so gradients interpolate without intermediate rounding.
type Color struct {
	R, G, B float64
}

// Common colours.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// FromRGBA converts from image/color.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{float64(r >> 8), float64(g >> 8), float64(b >> 8)}
}

// RGBA converts to an opaque color.RGBA, clamping each channel.
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp limits every channel to [0, 255].
func (c Color) Clamp() Color {
	return Color{clamp(c.R, 0, 255), clamp(c.G, 0, 255), clamp(c.B, 0, 255)}
}

// Lerp moves from c towards other by |t|, floors and clamps the result.
func (c Color) Lerp(other Color, t float64) Color {
	t = math.Abs(t)
	return Color{
		clamp(math.Floor(c.R+(other.R-c.R)*t), 0, 255),
		clamp(math.Floor(c.G+(other.G-c.G)*t), 0, 255),
		clamp(math.Floor(c.B+(other.B-c.B)*t), 0, 255),
	}
}

// Mix interpolates linearly without rounding. The rasterizer uses it for
// gradient attributes so repeated interpolation does not drift.
func (c Color) Mix(other Color, t float64) Color {
	return Color{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
	}
}

// Add sums colours per channel and clamps.
func Add(colors ...Color) Color {
	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	return sum.Clamp()
}

// Average returns the per-channel mean, or black for no input.
func Average(colors ...Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	n := float64(len(colors))
	return Color{sum.R / n, sum.G / n, sum.B / n}
}

// Multiply darkens: channels are multiplied in normalised space.
func Multiply(colors ...Color) Color {
	r, g, b := 1.0, 1.0, 1.0
	for _, c := range colors {
		r *= c.R / 255
		g *= c.G / 255
		b *= c.B / 255
	}
	return Color{r * 255, g * 255, b * 255}
}

// Screen lightens: the inverse of multiplying the inverted colours.
func Screen(colors ...Color) Color {
	r, g, b := 1.0, 1.0, 1.0
	for _, c := range colors {
		r *= 1 - c.R/255
		g *= 1 - c.G/255
		b *= 1 - c.B/255
	}
	return Color{(1 - r) * 255, (1 - g) * 255, (1 - b) * 255}
}

func overlay(a, b float64) float64 {
	a /= 255
	b /= 255
	if b >= 0.5 {
		return (1 - 2*(1-a)*(1-b)) * 255
	}
	return 2 * a * b * 255
}

// Overlay blends base with light: channels of light at or above half
// intensity lighten the base, darker channels darken it.
func Overlay(base, light Color) Color {
	return Color{overlay(base.R, light.R), overlay(base.G, light.G), overlay(base.B, light.B)}
}

// Squash compresses c into the range left above floor, per channel.
func Squash(c, floor Color) Color {
	sq := func(v, amount float64) float64 {
		return (255-amount)*(v/255) + amount
	}
	return Color{sq(c.R, floor.R), sq(c.G, floor.G), sq(c.B, floor.B)}
}
