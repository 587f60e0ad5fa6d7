// Package input polls SDL2 events and tracks keyboard state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
	keys   []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls pending SDL events and refreshes the keyboard snapshot. It
// returns true if the window was closed or Escape was pressed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			case sdl.KEYUP:
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	i.keys = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether the key went down during the last Update.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Down reports whether the key is held according to the last Update.
func (i *Input) Down(scancode sdl.Scancode) bool {
	return int(scancode) < len(i.keys) && i.keys[scancode] != 0
}
