package commands

import (
	"errors"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/guard"
)

var ErrStartLoadingCommandIsNotConstructed = errors.New(
	"StartLoadingCommand must be created via NewStartLoadingCommand constructor",
)

// StartLoadingCommand is issued from the operator task board when the loader
// begins work on a pending order.
type StartLoadingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartLoadingCommand(orderID kernel.UUID) (StartLoadingCommand, error) {
	cmd := StartLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return StartLoadingCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c StartLoadingCommand) Validate() error {
	return c.guard.Validate(ErrStartLoadingCommandIsNotConstructed)
}

func (c StartLoadingCommand) OrderID() kernel.UUID {
	return c.orderID
}
