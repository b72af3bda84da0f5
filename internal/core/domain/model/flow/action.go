package flow

import (
	"fmt"

	"stockyard/internal/pkg/errs"
)

// Action is what the driver came for, chosen on the welcome screen.
type Action int

const (
	ActionUnknown Action = iota
	Pickup
	Delivery
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

func ParseAction(s string) (Action, error) {
	for a, str := range getActionStrings() {
		if str == s {
			return a, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a known action", s))
}

func (a Action) IsValid() bool {
	_, ok := getActionStrings()[a]
	return ok
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
