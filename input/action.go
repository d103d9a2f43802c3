package input

import (
	"fmt"
	"strings"
)

// Action is a semantic control independent of the device that produced it
type Action uint8

const (
	ActionNone Action = iota

	// Held
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionBlock

	// Edge
	ActionJump
	ActionKick
	ActionConfirm

	actionCount
)

// actionNames maps canonical names used in key binding config
var actionNames = map[string]Action{
	"none":         ActionNone,
	"move_forward": ActionMoveForward,
	"move_back":    ActionMoveBack,
	"move_left":    ActionMoveLeft,
	"move_right":   ActionMoveRight,
	"sprint":       ActionSprint,
	"block":        ActionBlock,
	"jump":         ActionJump,
	"kick":         ActionKick,
	"confirm":      ActionConfirm,
}

// Held reports whether the action is a level (held) signal rather than an edge
func (a Action) Held() bool {
	return a >= ActionMoveForward && a <= ActionBlock
}

func (a Action) String() string {
	for name, action := range actionNames {
		if action == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}
