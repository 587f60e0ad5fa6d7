package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Logical framebuffer width")
	flagHeight  = flag.Int("height", 0, "Logical framebuffer height")
	flagScale   = flag.Int("scale", 0, "Screen pixels per logical pixel")
	flagFOV     = flag.Float64("fov", 0, "Vertical field of view in degrees")
	flagTexture = flag.String("texture", "", "Texture for the demo cube")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowStats = true
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.Display.BlockWidth = *flagScale
		cfg.Display.BlockHeight = *flagScale
	}
	if *flagFOV > 0 {
		cfg.Render.FOV = *flagFOV
	}
	if *flagTexture != "" {
		cfg.Scene.Texture = *flagTexture
	}
}
