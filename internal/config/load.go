package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)
	cfg.sanitize()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Yeentooth")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Yeentooth")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "yeentooth")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "yeentooth")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// sanitize replaces values the engine cannot run with by their defaults.
func (c *Config) sanitize() {
	def := Default()
	if c.Display.Width < 1 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height < 1 {
		c.Display.Height = def.Display.Height
	}
	if c.Display.BlockWidth < 1 {
		c.Display.BlockWidth = def.Display.BlockWidth
	}
	if c.Display.BlockHeight < 1 {
		c.Display.BlockHeight = def.Display.BlockHeight
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= 180 {
		c.Render.FOV = def.Render.FOV
	}
	if c.Render.Near <= 0 {
		c.Render.Near = def.Render.Near
	}
	if c.Render.DepthClear <= 0 {
		c.Render.DepthClear = def.Render.DepthClear
	}
	for i, v := range c.Render.Background {
		c.Render.Background[i] = min(max(v, 0), 255)
	}
}
