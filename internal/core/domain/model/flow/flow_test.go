package flow_test

import (
	"errors"
	"sync"
	"testing"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registry map[string]bool

func (r registry) IsRegistered(name string) bool {
	return r[name]
}

var testRegistry = registry{"Acme Corp": true, "BuildCo Ltd": true, "Construction Plus": true}

func product(t *testing.T, id string, availability catalog.Availability) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:            id,
		Name:          "Product " + id,
		Description:   "test product",
		StockyardArea: "Stockyard Area A",
		Availability:  availability,
	})
	require.NoError(t, err)
	return p
}

func fire(t *testing.T, s flow.State, e flow.Event) (flow.State, []flow.Effect) {
	t.Helper()
	next, effects, err := flow.Transition(s, e, testRegistry)
	require.NoError(t, err)
	return next, effects
}

// driveTo walks a fresh session forward to step, identifying as customer.
func driveTo(t *testing.T, step flow.Step, customer string) flow.State {
	t.Helper()
	events := []flow.Event{
		flow.ChooseAction{Action: flow.Pickup},
		flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: customer, GrossWeight: kernel.MustNewWeight(1650)},
		flow.ChooseAddress{Address: flow.NoAddress()},
		flow.ChooseProducts{Products: []catalog.Product{product(t, "1", catalog.Available)}},
		flow.SetQuantities{Quantities: map[string]float64{"1": 20}},
		flow.ConfirmPreload{OrderID: kernel.NewUUID()},
		flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(2850)},
	}

	s := flow.NewState()
	for _, e := range events {
		if s.Step() == step || s.Step().IsTerminal() {
			break
		}
		s, _ = fire(t, s, e)
	}
	require.Equal(t, step, s.Step())
	return s
}

func TestTransition_EndToEnd(t *testing.T) {
	s := flow.NewState()
	require.Equal(t, flow.Welcome, s.Step())
	assert.True(t, s.Draft().IsEmpty())

	s, _ = fire(t, s, flow.ChooseAction{Action: flow.Pickup})
	require.Equal(t, flow.Identity, s.Step())

	s, _ = fire(t, s, flow.ConfirmIdentity{
		NumberPlate:  "AB-123-CD",
		CustomerName: "  Acme Corp ",
		GrossWeight:  kernel.MustNewWeight(1650),
	})
	require.Equal(t, flow.Address, s.Step())
	assert.Equal(t, "Acme Corp", s.Draft().CustomerName())
	assert.True(t, s.Draft().IsRegistered())

	s, _ = fire(t, s, flow.ChooseAddress{Address: flow.NoAddress()})
	require.Equal(t, flow.Products, s.Step())
	assert.True(t, s.Draft().Address().IsChosen())

	s, _ = fire(t, s, flow.ChooseProducts{Products: []catalog.Product{product(t, "1", catalog.Available)}})
	require.Equal(t, flow.Quantities, s.Step())

	s, _ = fire(t, s, flow.SetQuantities{Quantities: map[string]float64{"1": 20}})
	require.Equal(t, flow.PreloadConfirm, s.Step())

	orderID := kernel.NewUUID()
	s, effects := fire(t, s, flow.ConfirmPreload{OrderID: orderID})
	require.Equal(t, flow.PostloadWeighIn, s.Step())
	require.Len(t, effects, 1)
	submit, ok := effects[0].(flow.SubmitOrder)
	require.True(t, ok)
	assert.True(t, submit.OrderID.IsEqual(orderID))
	assert.Equal(t, "AB-123-CD", submit.TruckID)
	assert.Equal(t, "Acme Corp", submit.CustomerName)
	assert.Nil(t, submit.Address)
	assert.Equal(t, order.InProgress, submit.Status)
	assert.Equal(t, order.Loading, submit.Kind)
	assert.InDelta(t, 1650.0, submit.GrossWeight.Kilograms(), 0)
	require.Len(t, submit.Lines, 1)
	assert.Equal(t, "1", submit.Lines[0].ProductID())
	assert.InDelta(t, 20.0, submit.Lines[0].Quantity(), 0)

	s, effects = fire(t, s, flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(2850)})
	require.Equal(t, flow.DeliveryNote, s.Step())
	require.Len(t, effects, 1)
	record, ok := effects[0].(flow.RecordWeighIn)
	require.True(t, ok)
	assert.True(t, record.OrderID.IsEqual(orderID))
	assert.InDelta(t, 1650.0, record.Tare.Kilograms(), 0)
	assert.InDelta(t, 1200.0, record.Net.Kilograms(), 0)
	net, ok := s.Draft().NetWeight()
	require.True(t, ok)
	assert.InDelta(t, 1200.0, net.Kilograms(), 0)

	s, effects = fire(t, s, flow.Finish{})
	require.Equal(t, flow.Welcome, s.Step())
	assert.True(t, s.Draft().IsEmpty())
	require.Len(t, effects, 1)
	assert.Equal(t, flow.Reset{From: flow.DeliveryNote, OrderID: orderID}, effects[0])
}

func TestTransition_DeliveryLeavesLighter(t *testing.T) {
	s, _ := fire(t, flow.NewState(), flow.ChooseAction{Action: flow.Delivery})
	s, _ = fire(t, s, flow.ConfirmIdentity{NumberPlate: "DE-456-FG", CustomerName: "BuildCo Ltd", GrossWeight: kernel.MustNewWeight(20000)})
	s, _ = fire(t, s, flow.ChooseAddress{Address: flow.NoAddress()})
	s, _ = fire(t, s, flow.ChooseProducts{Products: []catalog.Product{product(t, "2", catalog.Available)}})
	s, _ = fire(t, s, flow.SetQuantities{Quantities: map[string]float64{"2": 12}})
	orderID := kernel.NewUUID()
	s, _ = fire(t, s, flow.ConfirmPreload{OrderID: orderID})

	s, effects := fire(t, s, flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(8000)})

	require.Equal(t, flow.DeliveryNote, s.Step())
	require.Len(t, effects, 1)
	record, ok := effects[0].(flow.RecordWeighIn)
	require.True(t, ok)
	assert.True(t, record.OrderID.IsEqual(orderID))
	assert.InDelta(t, 20000.0, record.Tare.Kilograms(), 0)
	assert.InDelta(t, 12000.0, record.Net.Kilograms(), 0)
	require.NoError(t, record.Net.Validate())

	s, _ = fire(t, s, flow.Finish{})
	assert.Equal(t, flow.Welcome, s.Step())
}

func TestTransition_WeighInIsAlwaysAccepted(t *testing.T) {
	for _, kg := range []float64{0, 1000, 1650, 2850, kernel.WeightMaxKg} {
		s := driveTo(t, flow.PostloadWeighIn, "Random LLC")

		next, effects, err := flow.Transition(s, flow.ConfirmWeighIn{LoadedWeight: kernel.MustNewWeight(kg)}, testRegistry)

		require.NoError(t, err, "loaded %v kg", kg)
		assert.Equal(t, flow.Invoice, next.Step())
		require.Len(t, effects, 1)
		net, ok := next.Draft().NetWeight()
		require.True(t, ok)
		assert.GreaterOrEqual(t, net.Kilograms(), 0.0)
	}
}

func TestTransition_UnregisteredCustomerGetsInvoice(t *testing.T) {
	s := driveTo(t, flow.Invoice, "Random LLC")

	assert.False(t, s.Draft().IsRegistered())

	s, effects := fire(t, s, flow.Finish{})
	assert.Equal(t, flow.Welcome, s.Step())
	assert.Equal(t, flow.Invoice, effects[0].(flow.Reset).From)
}

func TestTransition_Guards(t *testing.T) {
	tests := []struct {
		name   string
		at     flow.Step
		event  func(t *testing.T) flow.Event
		reason string
	}{
		{
			name:   "unknown action",
			at:     flow.Welcome,
			event:  func(*testing.T) flow.Event { return flow.ChooseAction{} },
			reason: "pickup or delivery",
		},
		{
			name: "blank customer name",
			at:   flow.Identity,
			event: func(*testing.T) flow.Event {
				return flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "   ", GrossWeight: kernel.MustNewWeight(1650)}
			},
			reason: "customer name is required",
		},
		{
			name: "missing gross weight",
			at:   flow.Identity,
			event: func(*testing.T) flow.Event {
				return flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "Acme Corp"}
			},
			reason: "weight must be created",
		},
		{
			name:   "address not chosen",
			at:     flow.Address,
			event:  func(*testing.T) flow.Event { return flow.ChooseAddress{} },
			reason: "choose an address or none",
		},
		{
			name:   "empty product selection",
			at:     flow.Products,
			event:  func(*testing.T) flow.Event { return flow.ChooseProducts{} },
			reason: "at least one product",
		},
		{
			name: "unavailable product",
			at:   flow.Products,
			event: func(t *testing.T) flow.Event {
				return flow.ChooseProducts{Products: []catalog.Product{product(t, "4", catalog.Unavailable)}}
			},
			reason: "product 4 is unavailable",
		},
		{
			name: "all quantities zero",
			at:   flow.Quantities,
			event: func(*testing.T) flow.Event {
				return flow.SetQuantities{Quantities: map[string]float64{"1": 0}}
			},
			reason: "greater than 0",
		},
		{
			name: "negative quantity",
			at:   flow.Quantities,
			event: func(*testing.T) flow.Event {
				return flow.SetQuantities{Quantities: map[string]float64{"1": -3}}
			},
			reason: "must not be negative",
		},
		{
			name: "quantity for product not selected",
			at:   flow.Quantities,
			event: func(*testing.T) flow.Event {
				return flow.SetQuantities{Quantities: map[string]float64{"1": 5, "2": 5}}
			},
			reason: "product 2 is not selected",
		},
		{
			name:   "trigger of another step",
			at:     flow.Products,
			event:  func(*testing.T) flow.Event { return flow.Finish{} },
			reason: "finish is not accepted",
		},
		{
			name:   "previous after submit",
			at:     flow.PostloadWeighIn,
			event:  func(*testing.T) flow.Event { return flow.Previous{} },
			reason: "going back is not possible",
		},
		{
			name:   "previous at welcome",
			at:     flow.Welcome,
			event:  func(*testing.T) flow.Event { return flow.Previous{} },
			reason: "going back is not possible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := driveTo(t, tt.at, "Acme Corp")
			e := tt.event(t)

			next, effects, err := flow.Transition(s, e, testRegistry)

			require.ErrorIs(t, err, flow.ErrGuardViolation)
			var gv *flow.GuardViolationError
			require.ErrorAs(t, err, &gv)
			assert.Equal(t, tt.at, gv.Step)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Equal(t, s, next)
			assert.Nil(t, effects)
		})
	}
}

func TestTransition_NilEvent(t *testing.T) {
	_, _, err := flow.Transition(flow.NewState(), nil, testRegistry)
	require.ErrorIs(t, err, flow.ErrGuardViolation)
}

func TestTransition_ZeroQuantitiesAreDropped(t *testing.T) {
	s, _ := fire(t, flow.NewState(), flow.ChooseAction{Action: flow.Delivery})
	s, _ = fire(t, s, flow.ConfirmIdentity{NumberPlate: "DE-456-FG", CustomerName: "BuildCo Ltd", GrossWeight: kernel.MustNewWeight(1500)})
	s, _ = fire(t, s, flow.ChooseAddress{Address: flow.NoAddress()})
	s, _ = fire(t, s, flow.ChooseProducts{Products: []catalog.Product{
		product(t, "2", catalog.Available),
		product(t, "1", catalog.Available),
		product(t, "3", catalog.Low),
	}})

	ids := []string{}
	for _, p := range s.Draft().Products() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)

	s, _ = fire(t, s, flow.SetQuantities{Quantities: map[string]float64{"1": 0, "2": 4.5, "3": 10}})

	assert.Equal(t, map[string]float64{"2": 4.5, "3": 10}, s.Draft().Quantities())

	_, effects := fire(t, s, flow.ConfirmPreload{OrderID: kernel.NewUUID()})
	submit := effects[0].(flow.SubmitOrder)
	require.Len(t, submit.Lines, 2)
	assert.Equal(t, "2", submit.Lines[0].ProductID())
	assert.Equal(t, "3", submit.Lines[1].ProductID())
}

func TestTransition_SelectedAddressIsSubmitted(t *testing.T) {
	addr, err := catalog.NewAddress("1", "Hauptstraße 123", "Berlin", "10115", "Deutschland")
	require.NoError(t, err)

	s := driveTo(t, flow.Address, "Acme Corp")
	s, _ = fire(t, s, flow.ChooseAddress{Address: flow.SelectAddress(addr)})
	s, _ = fire(t, s, flow.ChooseProducts{Products: []catalog.Product{product(t, "1", catalog.Available)}})
	s, _ = fire(t, s, flow.SetQuantities{Quantities: map[string]float64{"1": 1}})
	_, effects := fire(t, s, flow.ConfirmPreload{OrderID: kernel.NewUUID()})

	submit := effects[0].(flow.SubmitOrder)
	require.NotNil(t, submit.Address)
	assert.Equal(t, "Berlin", submit.Address.City())
}

func TestTransition_Previous(t *testing.T) {
	t.Run("should discard fields of later steps", func(t *testing.T) {
		s := driveTo(t, flow.PreloadConfirm, "Acme Corp")

		s, _ = fire(t, s, flow.Previous{})
		assert.Equal(t, flow.Quantities, s.Step())
		assert.NotEmpty(t, s.Draft().Quantities())

		s, _ = fire(t, s, flow.Previous{})
		assert.Equal(t, flow.Products, s.Step())
		assert.Empty(t, s.Draft().Quantities())
		assert.NotEmpty(t, s.Draft().Products())

		s, _ = fire(t, s, flow.Previous{})
		assert.Equal(t, flow.Address, s.Step())
		assert.Empty(t, s.Draft().Products())
		assert.True(t, s.Draft().Address().IsChosen())

		s, _ = fire(t, s, flow.Previous{})
		assert.Equal(t, flow.Identity, s.Step())
		assert.False(t, s.Draft().Address().IsChosen())
		assert.Equal(t, "Acme Corp", s.Draft().CustomerName())

		s, _ = fire(t, s, flow.Previous{})
		assert.Equal(t, flow.Welcome, s.Step())
		assert.True(t, s.Draft().IsEmpty())
	})

	t.Run("should recompute registration when identity is confirmed again", func(t *testing.T) {
		s := driveTo(t, flow.Address, "Acme Corp")
		require.True(t, s.Draft().IsRegistered())

		s, _ = fire(t, s, flow.Previous{})
		s, _ = fire(t, s, flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "Random LLC", GrossWeight: kernel.MustNewWeight(1650)})

		assert.False(t, s.Draft().IsRegistered())
	})

	t.Run("should not touch the original state", func(t *testing.T) {
		s := driveTo(t, flow.PreloadConfirm, "Acme Corp")

		_, _ = fire(t, s, flow.Previous{})

		assert.Equal(t, map[string]float64{"1": 20}, s.Draft().Quantities())
	})
}

func TestTriggers(t *testing.T) {
	tests := []struct {
		step     flow.Step
		forward  flow.Trigger
		previous bool
	}{
		{flow.Welcome, flow.TriggerChooseAction, false},
		{flow.Identity, flow.TriggerConfirmIdentity, true},
		{flow.Address, flow.TriggerChooseAddress, true},
		{flow.Products, flow.TriggerChooseProducts, true},
		{flow.Quantities, flow.TriggerSetQuantities, true},
		{flow.PreloadConfirm, flow.TriggerConfirmPreload, true},
		{flow.PostloadWeighIn, flow.TriggerConfirmWeighIn, false},
		{flow.DeliveryNote, flow.TriggerFinish, false},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			got := flow.Triggers(driveTo(t, tt.step, "Acme Corp"))

			assert.Equal(t, tt.forward, got.Forward)
			assert.Equal(t, tt.previous, got.Previous)
		})
	}
}

func TestParseTriggerAndAction(t *testing.T) {
	trigger, err := flow.ParseTrigger("confirm-weigh-in")
	require.NoError(t, err)
	assert.Equal(t, flow.TriggerConfirmWeighIn, trigger)
	_, err = flow.ParseTrigger("jump")
	require.Error(t, err)

	action, err := flow.ParseAction("delivery")
	require.NoError(t, err)
	assert.Equal(t, flow.Delivery, action)
	_, err = flow.ParseAction("")
	require.Error(t, err)
}

func TestSequencer_Fire(t *testing.T) {
	t.Run("should keep state when the effect handler fails", func(t *testing.T) {
		q := flow.NewSequencer(testRegistry)
		for _, e := range []flow.Event{
			flow.ChooseAction{Action: flow.Pickup},
			flow.ConfirmIdentity{NumberPlate: "AB-123-CD", CustomerName: "Acme Corp", GrossWeight: kernel.MustNewWeight(1650)},
			flow.ChooseAddress{Address: flow.NoAddress()},
			flow.ChooseProducts{Products: []catalog.Product{product(t, "1", catalog.Available)}},
			flow.SetQuantities{Quantities: map[string]float64{"1": 20}},
		} {
			_, err := q.Fire(e, nil)
			require.NoError(t, err)
		}
		storeErr := errors.New("store is down")

		got, err := q.Fire(flow.ConfirmPreload{OrderID: kernel.NewUUID()}, func(_ flow.State, effects []flow.Effect) error {
			require.Len(t, effects, 1)
			return storeErr
		})

		require.ErrorIs(t, err, storeErr)
		assert.Equal(t, flow.PreloadConfirm, got.Step())
		assert.Equal(t, flow.PreloadConfirm, q.State().Step())
	})

	t.Run("should reject a trigger while another is applied", func(t *testing.T) {
		q := flow.NewSequencer(testRegistry)
		entered := make(chan struct{})
		release := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = q.Fire(flow.ChooseAction{Action: flow.Pickup}, func(flow.State, []flow.Effect) error {
				close(entered)
				<-release
				return nil
			})
		}()

		<-entered
		_, err := q.Fire(flow.ChooseAction{Action: flow.Delivery}, nil)
		close(release)
		wg.Wait()

		require.ErrorIs(t, err, flow.ErrTransitionInProgress)
		assert.Equal(t, flow.Identity, q.State().Step())
		assert.Equal(t, flow.Pickup, q.State().Draft().Action())
	})
}
