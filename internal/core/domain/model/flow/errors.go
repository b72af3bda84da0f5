package flow

import (
	"errors"
	"fmt"
)

var (
	ErrGuardViolation = errors.New("guard violation")

	// ErrTransitionInProgress is returned when a trigger arrives while the
	// previous one is still being applied.
	ErrTransitionInProgress = errors.New("transition is in progress")
)

// GuardViolationError explains why a trigger was rejected at a step.
type GuardViolationError struct {
	Step    Step
	Trigger Trigger
	Reason  string
}

func NewGuardViolationError(step Step, trigger Trigger, reason string) *GuardViolationError {
	return &GuardViolationError{
		Step:    step,
		Trigger: trigger,
		Reason:  reason,
	}
}

func (e *GuardViolationError) Error() string {
	return fmt.Sprintf("%s: %s at %s: %s", ErrGuardViolation, e.Trigger, e.Step, e.Reason)
}

func (e *GuardViolationError) Unwrap() error {
	return ErrGuardViolation
}
