package controller

import (
	"strings"

	"github.com/pkg/errors"
)

// Action is a grid mutation requested by the user.
type Action int

const (
	PlaceStart Action = iota
	PlaceGoal
	PlaceObstacle
	Remove
)

var actionNames = [...]string{
	PlaceStart:    "place_start",
	PlaceGoal:     "place_goal",
	PlaceObstacle: "place_obstacle",
	Remove:        "remove",
}

var ErrUnknownAction = errors.New("unknown grid action")

func (action Action) String() string {
	if action < 0 || int(action) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[action]
}

// ParseAction accepts the names produced by Action.String, case-insensitively.
func ParseAction(name string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for action, actionName := range actionNames {
		if actionName == normalized {
			return Action(action), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAction, "%q", name)
}
