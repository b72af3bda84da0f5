package commands_test

import (
	"errors"
	"testing"

	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/core/domain/model/session"
	"stockyard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewApplyFlowEventCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewApplyFlowEventCommand(id, flow.Finish{})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SessionID())
	assert.Equal(t, flow.Finish{}, cmd.Event())

	_, err = commands.NewApplyFlowEventCommand(kernel.UUID{}, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

// sessionAtPreload returns a session that only waits for the preload
// confirmation.
func sessionAtPreload(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.NewUUID(), testRegistry, testClock.now)
	require.NoError(t, err)

	gravel, err := catalog.NewProduct(catalog.ProductParams{
		ID: "1", Name: "Premium Gravel", Description: "gravel", StockyardArea: "Stockyard Area A", Availability: catalog.Available,
	})
	require.NoError(t, err)

	for _, e := range []flow.Event{
		flow.ChooseAction{Action: flow.Pickup},
		flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "Acme Corp", GrossWeight: kernel.MustNewWeight(1650)},
		flow.ChooseAddress{Address: flow.NoAddress()},
		flow.ChooseProducts{Products: []catalog.Product{gravel}},
		flow.SetQuantities{Quantities: map[string]float64{"1": 20}},
	} {
		_, err := s.Fire(e, nil, testClock.now)
		require.NoError(t, err)
	}
	require.Equal(t, flow.PreloadConfirm, s.State().Step())
	return s
}

func TestApplyFlowEventCommandHandler_Handle(t *testing.T) {
	t.Run("should advance without touching the store", func(t *testing.T) {
		ctx := t.Context()
		s, err := session.NewSession(kernel.NewUUID(), testRegistry, testClock.now)
		require.NoError(t, err)
		cmd, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.ChooseAction{Action: flow.Delivery})

		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()
		factory := new(MockOrderUoWFactory)

		h := commands.NewApplyFlowEventCommandHandler(sessions, factory, testClock)
		state, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, flow.Identity, state.Step())
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should submit order and record weigh-in", func(t *testing.T) {
		ctx := t.Context()
		s := sessionAtPreload(t)
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil)

		var stored *order.Order
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
				stored = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewApplyFlowEventCommandHandler(sessions, factory, testClock)
		preload, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.ConfirmPreload{})
		state, err := h.Handle(ctx, preload)

		require.NoError(t, err)
		assert.Equal(t, flow.PostloadWeighIn, state.Step())
		require.NotNil(t, stored)
		assert.Equal(t, order.InProgress, stored.Status())
		assert.Equal(t, order.Loading, stored.Kind())
		assert.Equal(t, "AB-123-CD", stored.TruckID())
		orderID, ok := state.Draft().OrderID()
		require.True(t, ok)
		assert.True(t, stored.ID().IsEqual(orderID))

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
			repo.On("Update", ctx, stored).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		weighIn, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(2850)})
		state, err = h.Handle(ctx, weighIn)

		require.NoError(t, err)
		assert.Equal(t, flow.DeliveryNote, state.Step())
		net, ok := stored.NetWeight()
		require.True(t, ok)
		assert.InDelta(t, 1200.0, net.Kilograms(), 0)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should stay at preload when the store fails", func(t *testing.T) {
		ctx := t.Context()
		s := sessionAtPreload(t)
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewApplyFlowEventCommandHandler(sessions, factory, testClock)
		cmd, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.ConfirmPreload{})
		state, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, flow.PreloadConfirm, state.Step())
		assert.Equal(t, flow.PreloadConfirm, s.State().Step())
		uow.AssertExpectations(t)
	})

	t.Run("should stay at preload when begin fails", func(t *testing.T) {
		ctx := t.Context()
		s := sessionAtPreload(t)
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()

		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
		)

		h := commands.NewApplyFlowEventCommandHandler(sessions, factory, testClock)
		cmd, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.ConfirmPreload{})
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, flow.PreloadConfirm, s.State().Step())
	})

	t.Run("should surface guard violations", func(t *testing.T) {
		ctx := t.Context()
		s, err := session.NewSession(kernel.NewUUID(), testRegistry, testClock.now)
		require.NoError(t, err)
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()

		h := commands.NewApplyFlowEventCommandHandler(sessions, new(MockOrderUoWFactory), testClock)
		cmd, _ := commands.NewApplyFlowEventCommand(s.ID(), flow.Previous{})
		state, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, flow.ErrGuardViolation)
		assert.Equal(t, flow.Welcome, state.Step())
	})

	t.Run("should report unknown session", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		sessions := new(MockSessionRepository)
		sessions.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id)).Once()

		h := commands.NewApplyFlowEventCommandHandler(sessions, new(MockOrderUoWFactory), testClock)
		cmd, _ := commands.NewApplyFlowEventCommand(id, flow.Finish{})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
