// Command snapshot renders the demo scene without a window and writes the
// colour and depth buffers as PNG files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/config"
	"github.com/Faultbox/yeentooth/internal/engine/camera"
	"github.com/Faultbox/yeentooth/internal/engine/debug"
	"github.com/Faultbox/yeentooth/internal/engine/lighting"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/game"
	"github.com/Faultbox/yeentooth/internal/logger"
	"github.com/Faultbox/yeentooth/internal/scene"
)

var (
	outDir = flag.String("out", "snapshots", "Output directory")
	frames = flag.Int("frames", 1, "Frames to simulate before capturing")
	fps    = flag.Float64("fps", 30, "Simulated frame rate")
	orbit  = flag.Bool("orbit", false, "Frame the whole scene from an orbit camera")
	yaw    = flag.Float64("yaw", 0.6, "Orbit yaw in radians")
	pitch  = flag.Float64("pitch", 0.4, "Orbit pitch in radians")
	dump   = flag.Bool("dump", false, "Write the scene tree next to the images")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var tex *texture.Texture
	if cfg.Scene.Texture != "" {
		t, err := texture.Load(cfg.Scene.Texture)
		if err != nil {
			return err
		}
		tex = t
	}

	g := game.New(cfg)
	demo, err := game.BuildDemo(g.Scene(), game.DemoOptions{
		FOV:    cfg.Render.FOV,
		Height: cfg.Display.Height,
		Cube:   tex,
		Sun:    cfg.Scene.Sun,

		SunLongitude: cfg.Scene.SunLongitude,
		SunLatitude:  cfg.Scene.SunLatitude,
	})
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	demo.Install(g)

	s := g.Scene()
	if *orbit {
		box, ok := debug.Bounds(s, s.Root())
		if !ok {
			return fmt.Errorf("scene has no geometry")
		}
		o := camera.Orbit{
			Center:   box.Center(),
			Distance: box.Radius() * 1.6,
			Yaw:      *yaw,
			Pitch:    camera.ClampPitch(*pitch),
		}
		if err := o.Apply(s, demo.Head); err != nil {
			return err
		}
	}

	dt := 1 / max(*fps, 1)
	for i := 0; i < max(*frames, 1); i++ {
		if err := g.Step(dt, nil); err != nil {
			return err
		}
	}
	logger.Info("rendered", g.Renderer().Stats().Fields()...)

	if demo.Sun != scene.Nil {
		dir := lighting.SunDirection(cfg.Scene.SunLongitude, cfg.Scene.SunLatitude)
		logger.Info("sun", zap.Float64s("toward", []float64{dir.X, dir.Y, dir.Z}))
	}

	g.SetScreenshotDir(*outDir)
	colour, err := g.Capture(false)
	if err != nil {
		return err
	}
	depth, err := g.Capture(true)
	if err != nil {
		return err
	}
	logger.Info("saved", zap.String("colour", colour), zap.String("depth", depth))

	if *dump {
		path := filepath.Join(*outDir, "scene.txt")
		if err := os.WriteFile(path, []byte(debug.DumpTree(s, s.Root())), 0644); err != nil {
			return fmt.Errorf("write scene dump: %w", err)
		}
		logger.Info("saved", zap.String("tree", path))
	}
	return nil
}
