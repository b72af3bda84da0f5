package commands

import (
	"errors"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/errs"
	"stockyard/internal/pkg/guard"
)

var ErrApplyFlowEventCommandIsNotConstructed = errors.New(
	"ApplyFlowEventCommand must be created via NewApplyFlowEventCommand constructor",
)

// ErrTransitionInProgress is returned when the driver triggers a step while
// the previous trigger of the same session is still being applied.
var ErrTransitionInProgress = flow.ErrTransitionInProgress

// ApplyFlowEventCommand delivers one driver action or sensor reading to a
// session.
//
// Example:
//
//	cmd, err := NewApplyFlowEventCommand(sessionID, flow.ChooseAction{Action: flow.Pickup})
//	if err != nil {
//	    return err
//	}
//	state, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, flow.ErrGuardViolation) {
//	    // keep the driver on the current screen
//	}
type ApplyFlowEventCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	event     flow.Event

	guard guard.ConstructorGuard
}

func NewApplyFlowEventCommand(sessionID kernel.UUID, event flow.Event) (ApplyFlowEventCommand, error) {
	cmd := ApplyFlowEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setEvent(event),
	); err != nil {
		return ApplyFlowEventCommand{}, err
	}

	return cmd, nil
}

func (c ApplyFlowEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyFlowEventCommandIsNotConstructed)
}

func (c ApplyFlowEventCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ApplyFlowEventCommand) Event() flow.Event {
	return c.event
}

func (c *ApplyFlowEventCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *ApplyFlowEventCommand) setEvent(event flow.Event) error {
	if event == nil {
		return errs.NewValueIsRequiredError("event")
	}

	c.event = event
	return nil
}
