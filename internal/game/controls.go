package game

import (
	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/engine/camera"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// Action is a held control the player can use. Shells bind actions to
// physical keys.
type Action uint8

const (
	MoveForward Action = iota
	MoveBack
	StrafeLeft
	StrafeRight
	Rise
	Sink
	TurnLeft
	TurnRight
	LookUp
	LookDown

	actionCount
)

var actionNames = [actionCount]string{
	"move forward", "move back", "strafe left", "strafe right", "rise", "sink",
	"turn left", "turn right", "look up", "look down",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// KeyState reports which actions are held.
type KeyState interface {
	Down(a Action) bool
}

// IntentFromKeys maps held actions to controller input.
func IntentFromKeys(k KeyState) camera.Intent {
	var in camera.Intent
	if k == nil {
		return in
	}
	axis := func(pos, neg Action) float64 {
		v := 0.0
		if k.Down(pos) {
			v++
		}
		if k.Down(neg) {
			v--
		}
		return v
	}
	in.Move = math.V3(
		axis(StrafeRight, StrafeLeft),
		axis(Rise, Sink),
		axis(MoveForward, MoveBack),
	)
	in.Yaw = axis(TurnRight, TurnLeft)
	in.Pitch = axis(LookDown, LookUp)
	return in
}

// Controls returns a behaviour driving c from the frame's key state.
func Controls(c *camera.FlyController) Behaviour {
	return func(f *Frame) {
		if err := c.Move(f.Scene, f.DT, IntentFromKeys(f.Keys)); err != nil {
			f.Log.Warn("player controls", zap.Error(err))
		}
	}
}
