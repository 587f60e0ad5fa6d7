package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types understood by DecodeTGA.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

// DecodeTGA decodes an uncompressed or RLE-compressed 24/32-bit TGA image.
// TGA has no magic number, so it cannot be registered with image.Decode;
// Load dispatches on the file extension instead.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, fmt.Errorf("tga: colour-mapped images not supported")
	}
	kind := data[2]
	if kind != tgaTrueColor && kind != tgaTrueColorRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", kind)
	}
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	depth := int(data[16])
	if depth != 24 && depth != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", depth)
	}
	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: image id truncated")
	}

	d := tgaDecoder{
		src:     data[offset:],
		bpp:     depth / 8,
		width:   width,
		height:  height,
		flipped: data[17]&0x20 == 0,
		img:     image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
	if kind == tgaTrueColor {
		if len(d.src) < width*height*d.bpp {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for d.n < width*height {
			c, _ := d.next()
			d.put(c)
		}
	} else {
		d.decodeRLE()
	}
	return d.img, nil
}

type tgaDecoder struct {
	src     []byte
	pos     int
	bpp     int
	width   int
	height  int
	flipped bool // bottom-up rows, the TGA default
	n       int  // pixels written
	img     *image.NRGBA
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() (color.NRGBA, bool) {
	if d.pos+d.bpp > len(d.src) {
		return color.NRGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

func (d *tgaDecoder) put(c color.NRGBA) {
	x, y := d.n%d.width, d.n/d.width
	if d.flipped {
		y = d.height - 1 - y
	}
	d.img.SetNRGBA(x, y, c)
	d.n++
}

func (d *tgaDecoder) decodeRLE() {
	total := d.width * d.height
	for d.n < total && d.pos < len(d.src) {
		header := d.src[d.pos]
		d.pos++
		count := int(header&0x7f) + 1
		if header&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return
			}
			for i := 0; i < count && d.n < total; i++ {
				d.put(c)
			}
			continue
		}
		for i := 0; i < count && d.n < total; i++ {
			c, ok := d.next()
			if !ok {
				return
			}
			d.put(c)
		}
	}
}
