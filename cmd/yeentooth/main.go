// Package main is the entry point for the yeentooth demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/config"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/internal/game"
	"github.com/Faultbox/yeentooth/internal/game/desktop"
	"github.com/Faultbox/yeentooth/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== yeentooth ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	var tex *texture.Texture
	if cfg.Scene.Texture != "" {
		tex, err = texture.Load(cfg.Scene.Texture)
		if err != nil {
			logger.Warn("using generated texture", zap.Error(err))
		}
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
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	demo.Install(g)

	shell, err := desktop.Open(g, cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer shell.Close()

	// Run the game loop
	if err := shell.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
