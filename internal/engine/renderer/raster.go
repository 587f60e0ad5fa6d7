package renderer

import (
	gomath "math"
	"sort"
)

// vertex is a projected corner: pixel coordinates, camera-space depth and
// shading attributes.
type vertex struct {
	x, y float64
	z    float64
	attr attr
}

func (a vertex) lerp(b vertex, t float64) vertex {
	return vertex{
		x:    a.x + (b.x-a.x)*t,
		y:    a.y + (b.y-a.y)*t,
		z:    a.z + (b.z-a.z)*t,
		attr: a.attr.lerp(b.attr, t),
	}
}

// edgeAt returns the point on edge a-b at row y.
func edgeAt(a, b vertex, y float64) vertex {
	if b.y == a.y {
		return a
	}
	return a.lerp(b, (y-a.y)/(b.y-a.y))
}

// fill scanline-fills the triangle and returns the number of pixels
// written. Vertices are sorted by y and the long edge top-bottom is split at
// the middle vertex's row: rows above it pair the long edge with top-mid,
// the rest with mid-bottom. Both ends of every span are inclusive.
func (r *Renderer) fill(v [3]vertex, p painter) int {
	sort.SliceStable(v[:], func(i, j int) bool { return v[i].y < v[j].y })
	top, mid, bot := v[0], v[1], v[2]

	width, height := r.fb.Size()
	y0 := max(top.y, 0)
	y1 := min(bot.y, float64(height-1))

	if top.y == bot.y {
		left, right := top, top
		for _, c := range v[1:] {
			if c.x < left.x {
				left = c
			}
			if c.x > right.x {
				right = c
			}
		}
		if top.y < 0 || top.y > float64(height-1) {
			return 0
		}
		return r.span(int(top.y), left, right, width, p)
	}

	written := 0
	for y := y0; y <= y1; y++ {
		long := edgeAt(top, bot, y)
		var short vertex
		if y < mid.y {
			short = edgeAt(top, mid, y)
		} else {
			short = edgeAt(mid, bot, y)
		}
		written += r.span(int(y), long, short, width, p)
	}
	return written
}

// span fills row y between a and b, interpolating depth and attributes
// across the row and clipping to the framebuffer width.
func (r *Renderer) span(y int, a, b vertex, width int, p painter) int {
	if a.x > b.x {
		a, b = b, a
	}
	xs := gomath.Floor(a.x)
	xe := gomath.Floor(b.x)
	dx := b.x - a.x

	written := 0
	for x := max(xs, 0); x <= min(xe, float64(width-1)); x++ {
		t := 0.0
		if dx != 0 {
			t = min(max((x-a.x)/dx, 0), 1)
		}
		frag := a.lerp(b, t)
		if r.fb.Plot(int(x), y, frag.z, p.paint(frag.attr)) {
			written++
		}
	}
	return written
}
