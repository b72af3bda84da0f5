package flow

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/order"
)

// Registry tells whether a customer has an account and receives a delivery
// note instead of an invoice.
type Registry interface {
	IsRegistered(customerName string) bool
}

// State is the current step together with the draft order.
type State struct {
	step  Step
	draft Draft
}

// NewState returns the state of a fresh kiosk session.
func NewState() State {
	return State{step: Welcome}
}

func (s State) Step() Step {
	return s.step
}

func (s State) Draft() Draft {
	return s.draft.clone()
}

// Enabled lists the triggers accepted at a step, regardless of the event
// payload.
type Enabled struct {
	Forward  Trigger
	Previous bool
}

// Triggers reports which triggers a UI should offer at s.
func Triggers(s State) Enabled {
	return Enabled{
		Forward:  forwardTriggers[s.step],
		Previous: s.step.canGoBack(),
	}
}

// Transition applies e to s. On a guard violation it returns s unchanged and
// a *GuardViolationError. Transition never mutates s.
func Transition(s State, e Event, reg Registry) (State, []Effect, error) {
	if e == nil {
		return s, nil, NewGuardViolationError(s.step, TriggerUnknown, "event is required")
	}

	if e.Trigger() == TriggerPrevious {
		return previous(s)
	}

	if want, ok := forwardTriggers[s.step]; !ok || want != e.Trigger() {
		return s, nil, NewGuardViolationError(s.step, e.Trigger(),
			fmt.Sprintf("%s is not accepted at this step", e.Trigger()))
	}

	var (
		next    State
		effects []Effect
		reason  string
	)
	switch ev := e.(type) {
	case ChooseAction:
		next, reason = chooseAction(s, ev)
	case ConfirmIdentity:
		next, reason = confirmIdentity(s, ev, reg)
	case ChooseAddress:
		next, reason = chooseAddress(s, ev)
	case ChooseProducts:
		next, reason = chooseProducts(s, ev)
	case SetQuantities:
		next, reason = setQuantities(s, ev)
	case ConfirmPreload:
		next, effects, reason = confirmPreload(s, ev)
	case ConfirmWeighIn:
		next, effects, reason = confirmWeighIn(s, ev)
	case Finish:
		next, effects = finish(s)
	default:
		reason = fmt.Sprintf("unsupported event %T", e)
	}

	if reason != "" {
		return s, nil, NewGuardViolationError(s.step, e.Trigger(), reason)
	}
	return next, effects, nil
}

func previous(s State) (State, []Effect, error) {
	if !s.step.canGoBack() {
		return s, nil, NewGuardViolationError(s.step, TriggerPrevious, "going back is not possible at this step")
	}

	target := s.step - 1
	if target == Welcome {
		return NewState(), nil, nil
	}
	return State{step: target, draft: s.draft.keepUpTo(target)}, nil, nil
}

func chooseAction(s State, ev ChooseAction) (State, string) {
	if !ev.Action.IsValid() {
		return s, "action must be pickup or delivery"
	}

	d := s.draft.clone()
	d.action = ev.Action
	return State{step: Identity, draft: d}, ""
}

func confirmIdentity(s State, ev ConfirmIdentity, reg Registry) (State, string) {
	name := strings.TrimSpace(ev.CustomerName)
	if name == "" {
		return s, "customer name is required"
	}
	plate := strings.TrimSpace(ev.NumberPlate)
	if plate == "" {
		return s, "number plate is required"
	}
	if err := ev.GrossWeight.Validate(); err != nil {
		return s, err.Error()
	}

	d := s.draft.clone()
	d.numberPlate = plate
	d.customerName = name
	d.isRegistered = reg != nil && reg.IsRegistered(name)
	gross := ev.GrossWeight
	d.grossWeight = &gross
	return State{step: Address, draft: d}, ""
}

func chooseAddress(s State, ev ChooseAddress) (State, string) {
	if !ev.Address.IsChosen() {
		return s, "choose an address or none"
	}
	if err := ev.Address.validate(); err != nil {
		return s, err.Error()
	}

	d := s.draft.clone()
	d.address = ev.Address
	return State{step: Products, draft: d}, ""
}

func chooseProducts(s State, ev ChooseProducts) (State, string) {
	if len(ev.Products) == 0 {
		return s, "at least one product must be selected"
	}

	selected := make([]catalog.Product, 0, len(ev.Products))
	for _, p := range ev.Products {
		if err := p.Validate(); err != nil {
			return s, err.Error()
		}
		if !p.Availability().CanBeOrdered() {
			return s, fmt.Sprintf("product %s is %s", p.ID(), p.Availability())
		}
		if slices.ContainsFunc(selected, func(q catalog.Product) bool { return q.ID() == p.ID() }) {
			continue
		}
		selected = append(selected, p)
	}
	slices.SortFunc(selected, func(a, b catalog.Product) int { return strings.Compare(a.ID(), b.ID()) })

	d := s.draft.clone()
	d.products = selected
	return State{step: Quantities, draft: d}, ""
}

func setQuantities(s State, ev SetQuantities) (State, string) {
	quantities := make(map[string]float64, len(ev.Quantities))
	var sum float64
	for id, q := range ev.Quantities {
		if !s.draft.isSelected(id) {
			return s, fmt.Sprintf("product %s is not selected", id)
		}
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return s, fmt.Sprintf("quantity of product %s must not be negative", id)
		}
		if q == 0 {
			continue
		}
		quantities[id] = q
		sum += q
	}
	if sum <= 0 {
		return s, "total quantity must be greater than 0"
	}

	d := s.draft.clone()
	d.quantities = quantities
	return State{step: PreloadConfirm, draft: d}, ""
}

func confirmPreload(s State, ev ConfirmPreload) (State, []Effect, string) {
	if err := ev.OrderID.Validate(); err != nil {
		return s, nil, err.Error()
	}

	lines := make([]order.Line, 0, len(s.draft.quantities))
	for _, p := range s.draft.products {
		q, ok := s.draft.quantities[p.ID()]
		if !ok {
			continue
		}
		line, err := order.NewLine(p.ID(), q)
		if err != nil {
			return s, nil, err.Error()
		}
		lines = append(lines, line)
	}

	gross, _ := s.draft.GrossWeight()
	submit := SubmitOrder{
		OrderID:      ev.OrderID,
		TruckID:      s.draft.numberPlate,
		CustomerName: s.draft.customerName,
		Lines:        lines,
		Address:      s.draft.address.ptr(),
		Status:       order.InProgress,
		Kind:         order.Loading,
		GrossWeight:  gross,
	}

	d := s.draft.clone()
	id := ev.OrderID
	d.orderID = &id
	return State{step: PostloadWeighIn, draft: d}, []Effect{submit}, ""
}

func confirmWeighIn(s State, ev ConfirmWeighIn) (State, []Effect, string) {
	if err := ev.LoadedWeight.Validate(); err != nil {
		return s, nil, err.Error()
	}
	tare, _ := s.draft.GrossWeight()
	// A pickup leaves heavier than it arrived, a delivery lighter. Either way
	// the net weight is the material moved.
	net := ev.LoadedWeight.Diff(tare)

	d := s.draft.clone()
	loaded := ev.LoadedWeight
	d.loadedWeight = &loaded
	d.tareWeight = &tare
	d.netWeight = &net

	step := Invoice
	if d.isRegistered {
		step = DeliveryNote
	}

	orderID, _ := d.OrderID()
	record := RecordWeighIn{
		OrderID: orderID,
		Loaded:  loaded,
		Tare:    tare,
		Net:     net,
	}
	return State{step: step, draft: d}, []Effect{record}, ""
}

func finish(s State) (State, []Effect) {
	orderID, _ := s.draft.OrderID()
	return NewState(), []Effect{Reset{From: s.step, OrderID: orderID}}
}
