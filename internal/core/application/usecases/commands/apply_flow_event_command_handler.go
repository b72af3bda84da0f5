package commands

import (
	"context"
	"fmt"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/core/ports"
)

// ApplyFlowEventCommandHandler moves a driver session one step and stores
// what the step produced. The session only advances when the order store
// accepted the effects.
//
// Effects handled:
//   - SubmitOrder: the order is created in-progress
//   - RecordWeighIn: tare and net weight are stored on the order
//   - Reset: nothing to store
type ApplyFlowEventCommandHandler struct {
	sessions   ports.SessionRepository
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewApplyFlowEventCommandHandler(
	sessions ports.SessionRepository,
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) ApplyFlowEventCommandHandler {
	return ApplyFlowEventCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the state the session is in afterwards. On error that is
// the unchanged state, or the zero state when the session does not exist.
func (h *ApplyFlowEventCommandHandler) Handle(ctx context.Context, cmd ApplyFlowEventCommand) (flow.State, error) {
	if err := cmd.Validate(); err != nil {
		return flow.State{}, err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return flow.State{}, err
	}

	event := cmd.Event()
	if preload, ok := event.(flow.ConfirmPreload); ok && preload.OrderID.Validate() != nil {
		event = flow.ConfirmPreload{OrderID: kernel.NewUUID()}
	}

	return s.Fire(event, func(_ flow.State, effects []flow.Effect) error {
		return h.store(ctx, effects)
	}, h.clock.Now())
}

func (h *ApplyFlowEventCommandHandler) store(ctx context.Context, effects []flow.Effect) error {
	if !needsStore(effects) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, effect := range effects {
		var err error
		switch e := effect.(type) {
		case flow.SubmitOrder:
			err = submitOrder(ctx, orderRepo, e)
		case flow.RecordWeighIn:
			err = recordWeighIn(ctx, orderRepo, e)
		}
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func needsStore(effects []flow.Effect) bool {
	for _, effect := range effects {
		switch effect.(type) {
		case flow.SubmitOrder, flow.RecordWeighIn:
			return true
		}
	}
	return false
}

func submitOrder(ctx context.Context, repo ports.OrderRepository, e flow.SubmitOrder) error {
	o, err := order.NewOrder(e.Params())
	if err != nil {
		return err
	}

	if e.Status == order.InProgress {
		if err := o.StartLoading(); err != nil {
			return err
		}
	}

	if err := repo.Add(ctx, o); err != nil {
		return fmt.Errorf("submit order %s: %w", e.OrderID, err)
	}
	return nil
}

func recordWeighIn(ctx context.Context, repo ports.OrderRepository, e flow.RecordWeighIn) error {
	o, err := repo.Get(ctx, e.OrderID)
	if err != nil {
		return err
	}

	if err := o.RecordWeighIn(e.Tare, e.Net); err != nil {
		return err
	}

	return repo.Update(ctx, o)
}
