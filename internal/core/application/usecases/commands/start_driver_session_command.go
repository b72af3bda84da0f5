package commands

import (
	"errors"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/guard"
)

var ErrStartDriverSessionCommandIsNotConstructed = errors.New(
	"StartDriverSessionCommand must be created via NewStartDriverSessionCommand constructor",
)

// StartDriverSessionCommand opens a kiosk session at the welcome screen.
type StartDriverSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartDriverSessionCommand(sessionID kernel.UUID) (StartDriverSessionCommand, error) {
	cmd := StartDriverSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return StartDriverSessionCommand{}, err
	}

	return cmd, nil
}

func (c StartDriverSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartDriverSessionCommandIsNotConstructed)
}

func (c StartDriverSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *StartDriverSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}
