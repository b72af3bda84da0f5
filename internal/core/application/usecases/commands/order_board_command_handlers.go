package commands

import (
	"context"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/core/ports"
)

// StartLoadingCommandHandler moves a pending order to in-progress.
type StartLoadingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartLoadingCommandHandler(uowFactory OrderUoWFactory) StartLoadingCommandHandler {
	return StartLoadingCommandHandler{uowFactory: uowFactory}
}

func (h *StartLoadingCommandHandler) Handle(ctx context.Context, cmd StartLoadingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.StartLoading()
	})
}

// CompleteOrderCommandHandler moves an in-progress order to completed.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Complete()
	})
}

// AddOrderNoteCommandHandler appends a note stamped with the current time.
type AddOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAddOrderNoteCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddNote(cmd.Text(), h.clock.Now())
	})
}

// updateOrder loads an order, applies change and stores it in one transaction.
func updateOrder(ctx context.Context, uowFactory OrderUoWFactory, id kernel.UUID, change func(*order.Order) error) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
