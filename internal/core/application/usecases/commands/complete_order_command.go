package commands

import (
	"errors"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand closes an in-progress order on the operator task board.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
