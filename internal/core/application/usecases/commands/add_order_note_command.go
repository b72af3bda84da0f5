package commands

import (
	"errors"
	"strings"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/errs"
	"stockyard/internal/pkg/guard"
)

var ErrAddOrderNoteCommandIsNotConstructed = errors.New(
	"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
)

// AddOrderNoteCommand attaches an operator note to an order.
type AddOrderNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	text    string

	guard guard.ConstructorGuard
}

func NewAddOrderNoteCommand(orderID kernel.UUID, text string) (AddOrderNoteCommand, error) {
	cmd := AddOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setText(text),
	); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

func (c AddOrderNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderNoteCommand) Text() string {
	return c.text
}

func (c *AddOrderNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderNoteCommand) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("note text")
	}

	c.text = text
	return nil
}
