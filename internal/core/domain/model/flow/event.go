package flow

import (
	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
)

// Event is a driver action or a sensor reading delivered to the sequencer.
// The set of events is closed; see the types below.
type Event interface {
	Trigger() Trigger
	isEvent()
}

type ChooseAction struct {
	Action Action
}

// ConfirmIdentity carries the detected plate and gross weight together with
// the customer name the driver confirmed.
type ConfirmIdentity struct {
	NumberPlate  string
	CustomerName string
	GrossWeight  kernel.Weight
}

type ChooseAddress struct {
	Address AddressChoice
}

type ChooseProducts struct {
	Products []catalog.Product
}

// SetQuantities maps product id to tons. Zero entries are ignored.
type SetQuantities struct {
	Quantities map[string]float64
}

// ConfirmPreload submits the order under OrderID.
type ConfirmPreload struct {
	OrderID kernel.UUID
}

type ConfirmWeighIn struct {
	LoadedWeight kernel.Weight
}

type Finish struct{}

type Previous struct{}

func (ChooseAction) Trigger() Trigger    { return TriggerChooseAction }
func (ConfirmIdentity) Trigger() Trigger { return TriggerConfirmIdentity }
func (ChooseAddress) Trigger() Trigger   { return TriggerChooseAddress }
func (ChooseProducts) Trigger() Trigger  { return TriggerChooseProducts }
func (SetQuantities) Trigger() Trigger   { return TriggerSetQuantities }
func (ConfirmPreload) Trigger() Trigger  { return TriggerConfirmPreload }
func (ConfirmWeighIn) Trigger() Trigger  { return TriggerConfirmWeighIn }
func (Finish) Trigger() Trigger          { return TriggerFinish }
func (Previous) Trigger() Trigger        { return TriggerPrevious }

func (ChooseAction) isEvent()    {}
func (ConfirmIdentity) isEvent() {}
func (ChooseAddress) isEvent()   {}
func (ChooseProducts) isEvent()  {}
func (SetQuantities) isEvent()   {}
func (ConfirmPreload) isEvent()  {}
func (ConfirmWeighIn) isEvent()  {}
func (Finish) isEvent()          {}
func (Previous) isEvent()        {}
