// Package window shows the framebuffer in an SDL2 window, scaling every
// logical pixel up to a block of screen pixels.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/engine/framebuffer"
	"github.com/Faultbox/yeentooth/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread.
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title string
	// Width and Height are the logical resolution.
	Width  int
	Height int
	// BlockWidth and BlockHeight are the screen pixels per logical pixel.
	BlockWidth  int
	BlockHeight int
	Fullscreen  bool
}

// ScreenSize returns the window size in screen pixels.
func (c Config) ScreenSize() (int, int) {
	return c.Width * max(c.BlockWidth, 1), c.Height * max(c.BlockHeight, 1)
}

// Window wraps an SDL2 window drawn through its software surface.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	log       *zap.Logger
}

// New initialises SDL video and opens the window.
func New(cfg Config) (*Window, error) {
	w := &Window{config: cfg, log: logger.Named("window")}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	sw, sh := cfg.ScreenSize()

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(sw),
		int32(sh),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", sw),
		zap.Int("height", sh),
		zap.Int("logicalWidth", cfg.Width),
		zap.Int("logicalHeight", cfg.Height),
	)
	return w, nil
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.log.Info("closing window")
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// Present copies fb to the window, each logical pixel filling a
// BlockWidth x BlockHeight rectangle, with the image centred in the window.
func (w *Window) Present(fb *framebuffer.Framebuffer) error {
	surface, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("get window surface: %w", err)
	}

	fw, fh := fb.Size()
	bw, bh := int32(max(w.config.BlockWidth, 1)), int32(max(w.config.BlockHeight, 1))
	ox := (surface.W - int32(fw)*bw) / 2
	oy := (surface.H - int32(fh)*bh) / 2

	rect := sdl.Rect{W: bw, H: bh}
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			c := fb.ColorAt(x, y).RGBA()
			rect.X = ox + int32(x)*bw
			rect.Y = oy + int32(y)*bh
			if err := surface.FillRect(&rect, sdl.MapRGB(surface.Format, c.R, c.G, c.B)); err != nil {
				return fmt.Errorf("fill block: %w", err)
			}
		}
	}
	return w.sdlWindow.UpdateSurface()
}

// Size returns the current window size in screen pixels.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
