package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyQueries(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_A},
	)
	in.keys = make([]uint8, sdl.NUM_SCANCODES)
	in.keys[sdl.SCANCODE_W] = 1

	if !in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("IsKeyPressed(W) = false, want true")
	}
	if in.IsKeyPressed(sdl.SCANCODE_A) {
		t.Error("IsKeyPressed(A) = true for a key-up event")
	}
	if !in.Down(sdl.SCANCODE_W) || in.Down(sdl.SCANCODE_S) {
		t.Error("Down() does not reflect the keyboard snapshot")
	}
}

func TestDownBeforeUpdate(t *testing.T) {
	if New().Down(sdl.SCANCODE_SPACE) {
		t.Error("Down() before any Update should be false")
	}
}
