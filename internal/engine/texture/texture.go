// Package texture loads images into textures sampled by the rasterizer with
// nearest-neighbour lookup.
package texture

import (
	"bytes"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/Faultbox/yeentooth/internal/engine/shade"
)

// Texture is a grid of colours addressed in texel coordinates with the
// origin at the top-left corner.
type Texture struct {
	Name   string
	width  int
	height int
	pixels []shade.Color
}

// New creates a texture filled with a single colour.
func New(name string, width, height int, fill shade.Color) *Texture {
	t := &Texture{Name: name, width: width, height: height, pixels: make([]shade.Color, width*height)}
	for i := range t.pixels {
		t.pixels[i] = fill
	}
	return t
}

// FromImage copies an image into a texture.
func FromImage(name string, img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{Name: name, width: b.Dx(), height: b.Dy(), pixels: make([]shade.Color, b.Dx()*b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.pixels[(y-b.Min.Y)*t.width+(x-b.Min.X)] = shade.FromRGBA(img.At(x, y))
		}
	}
	return t
}

// Load reads a PNG, JPEG, BMP or TGA file.
func Load(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading texture %q", path)
	}
	img, err := Decode(path, data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding texture %q", path)
	}
	return FromImage(filepath.Base(path), img), nil
}

// Decode decodes image data, using the name's extension to recognise TGA.
func Decode(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "unrecognised image format")
	}
	return img, nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Set stores a texel. Out-of-range writes are ignored.
func (t *Texture) Set(x, y int, c shade.Color) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pixels[y*t.width+x] = c
}

// At returns the texel at (x, y), clamping coordinates to the texture edge.
func (t *Texture) At(x, y int) shade.Color {
	if t.width == 0 || t.height == 0 {
		return shade.Black
	}
	x = min(max(x, 0), t.width-1)
	y = min(max(y, 0), t.height-1)
	return t.pixels[y*t.width+x]
}
