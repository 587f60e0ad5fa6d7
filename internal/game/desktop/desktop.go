// Package desktop runs a game in an SDL2 window: it polls the keyboard,
// steps the game and presents every frame.
package desktop

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/config"
	"github.com/Faultbox/yeentooth/internal/engine/input"
	"github.com/Faultbox/yeentooth/internal/engine/window"
	"github.com/Faultbox/yeentooth/internal/game"
	"github.com/Faultbox/yeentooth/internal/logger"
)

// Bindings maps game actions to keys.
type Bindings map[game.Action]sdl.Scancode

// DefaultBindings returns the stock layout. W/S move forward and back, A/D
// strafe, Space/LShift rise and sink, arrows look around.
func DefaultBindings() Bindings {
	return Bindings{
		game.MoveForward: sdl.SCANCODE_W,
		game.MoveBack:    sdl.SCANCODE_S,
		game.StrafeLeft:  sdl.SCANCODE_A,
		game.StrafeRight: sdl.SCANCODE_D,
		game.Rise:        sdl.SCANCODE_SPACE,
		game.Sink:        sdl.SCANCODE_LSHIFT,
		game.TurnLeft:    sdl.SCANCODE_LEFT,
		game.TurnRight:   sdl.SCANCODE_RIGHT,
		game.LookUp:      sdl.SCANCODE_UP,
		game.LookDown:    sdl.SCANCODE_DOWN,
	}
}

// Debug keys.
const (
	KeyScreenshot = sdl.SCANCODE_F12
	KeyDepthShot  = sdl.SCANCODE_F11
	KeyCrosshair  = sdl.SCANCODE_F10
)

// scancodes reports held keys.
type scancodes interface {
	Down(sc sdl.Scancode) bool
}

// Keyboard adapts held keys to game actions.
type Keyboard struct {
	keys     scancodes
	bindings Bindings
}

// Down reports whether the key bound to a is held.
func (k Keyboard) Down(a game.Action) bool {
	sc, ok := k.bindings[a]
	return ok && k.keys.Down(sc)
}

// Shell owns the window around a game.
type Shell struct {
	game     *game.Game
	window   *window.Window
	input    *input.Input
	keyboard Keyboard

	title     string
	showStats bool
	running   bool
	log       *zap.Logger
}

// Open creates the SDL window for g sized from cfg.Display.
func Open(g *game.Game, cfg *config.Config) (*Shell, error) {
	w, err := window.New(window.Config{
		Title:       cfg.Display.Title,
		Width:       cfg.Display.Width,
		Height:      cfg.Display.Height,
		BlockWidth:  cfg.Display.BlockWidth,
		BlockHeight: cfg.Display.BlockHeight,
		Fullscreen:  cfg.Display.Fullscreen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	in := input.New()
	return &Shell{
		game:      g,
		window:    w,
		input:     in,
		keyboard:  Keyboard{keys: in, bindings: DefaultBindings()},
		title:     cfg.Display.Title,
		showStats: cfg.Debug.ShowStats,
		log:       logger.Named("desktop"),
	}, nil
}

// Run starts the main loop and returns when the window is closed.
func (s *Shell) Run() error {
	s.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	dt := 0.0

	s.log.Info("starting game loop")

	for s.running {
		// 1. Process input
		if s.input.Update() {
			s.running = false
			break
		}
		s.handleEvents()

		// 2. Update and render
		if err := s.game.Step(dt, s.keyboard); err != nil {
			return err
		}

		// 3. Present
		if err := s.window.Present(s.game.Framebuffer()); err != nil {
			return fmt.Errorf("present: %w", err)
		}

		now := time.Now()
		dt = now.Sub(lastTime).Seconds()
		lastTime = now

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			fields := append([]zap.Field{
				zap.Int("fps", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			}, s.game.Renderer().Stats().Fields()...)
			s.log.Debug("frame", fields...)
			if s.showStats {
				s.window.SetTitle(fmt.Sprintf("%s - %d fps", s.title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (s *Shell) handleEvents() {
	for _, event := range s.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			s.log.Debug("window resized", zap.Int("width", event.Width), zap.Int("height", event.Height))
		case input.EventKeyDown:
			switch event.Key {
			case KeyScreenshot, KeyDepthShot:
				if _, err := s.game.Capture(event.Key == KeyDepthShot); err != nil {
					s.log.Warn("screenshot failed", zap.Error(err))
				}
			case KeyCrosshair:
				s.game.LogCrosshair()
			}
		}
	}
}

// Close releases the window.
func (s *Shell) Close() {
	s.log.Info("closing window")
	if s.window != nil {
		s.window.Close()
		s.window = nil
	}
}
