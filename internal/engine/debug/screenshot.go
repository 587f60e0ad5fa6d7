// Package debug provides inspection helpers: PNG captures of the frame
// buffers, scene bounds and scene tree dumps.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/yeentooth/internal/engine/framebuffer"
)

// DepthScale maps depth to grey in depth captures.
const DepthScale = 25

// ScreenshotCapture writes framebuffer captures as PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	scale     int
	seq       int
}

// NewScreenshotCapture creates a capture handler writing to outputDir. Each
// logical pixel is enlarged to scale x scale.
func NewScreenshotCapture(outputDir, prefix string, scale int) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		scale:     max(scale, 1),
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// Capture writes the colour buffer and returns the file name.
func (sc *ScreenshotCapture) Capture(fb *framebuffer.Framebuffer) (string, error) {
	return sc.CaptureFromImage(fb.Image(), "")
}

// CaptureDepth writes the depth buffer as greyscale, nearer is darker.
func (sc *ScreenshotCapture) CaptureDepth(fb *framebuffer.Framebuffer) (string, error) {
	return sc.CaptureFromImage(fb.DepthImage(DepthScale), "depth")
}

// CaptureFromImage scales img and writes it. suffix, if set, is appended to
// the generated name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image, suffix string) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := sc.GenerateFilename(suffix)

	out := img
	if sc.scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*sc.scale, b.Dy()*sc.scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		out = dst
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, out); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the next capture file name. A sequence number
// keeps captures taken within the same second apart.
func (sc *ScreenshotCapture) GenerateFilename(suffix string) string {
	sc.seq++
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s_%03d", sc.prefix, timestamp, sc.seq)
	if suffix != "" {
		name += "_" + suffix
	}
	name += ".png"
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}
