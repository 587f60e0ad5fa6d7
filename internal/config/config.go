// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// DisplayConfig holds window settings. Width and Height are the logical
// framebuffer resolution; each logical pixel is drawn as a block of
// BlockWidth x BlockHeight screen pixels.
type DisplayConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BlockWidth  int    `yaml:"block_width"`
	BlockHeight int    `yaml:"block_height"`
	Fullscreen  bool   `yaml:"fullscreen"`
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	FOV        float64 `yaml:"fov"`
	Near       float64 `yaml:"near"`
	DepthClear float64 `yaml:"depth_clear"`
	Background [3]int  `yaml:"background"`
}

// SceneConfig holds demo scene settings.
type SceneConfig struct {
	Texture string `yaml:"texture"` // optional cube texture (png, jpeg, bmp, tga)
	Sun     bool   `yaml:"sun"`

	// Sun position in degrees: longitude about Y, latitude above the horizon.
	SunLongitude float64 `yaml:"sun_longitude"`
	SunLatitude  float64 `yaml:"sun_latitude"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds debug capture settings.
type DebugConfig struct {
	ScreenshotDir   string `yaml:"screenshot_dir"`
	ScreenshotScale int    `yaml:"screenshot_scale"`
	ShowStats       bool   `yaml:"show_stats"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title:       "yeentooth",
			Width:       128,
			Height:      96,
			BlockWidth:  5,
			BlockHeight: 5,
		},
		Render: RenderConfig{
			FOV:        60,
			Near:       0.1,
			DepthClear: 1024,
			Background: [3]int{255, 255, 255},
		},
		Scene: SceneConfig{
			Sun:          true,
			SunLongitude: 60,
			SunLatitude:  60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir:   "screenshots",
			ScreenshotScale: 4,
		},
	}
}
