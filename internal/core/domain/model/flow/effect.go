package flow

import (
	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
)

// Effect is work the sequencer asks its caller to perform after a transition.
type Effect interface {
	isEffect()
}

// SubmitOrder asks for the finalized order to be stored.
type SubmitOrder struct {
	OrderID      kernel.UUID
	TruckID      string
	CustomerName string
	Lines        []order.Line
	Address      *catalog.Address
	Status       order.Status
	Kind         order.Kind
	GrossWeight  kernel.Weight
}

// Params converts the effect into order constructor parameters.
func (e SubmitOrder) Params() order.Params {
	return order.Params{
		ID:           e.OrderID,
		TruckID:      e.TruckID,
		CustomerName: e.CustomerName,
		Lines:        e.Lines,
		Address:      e.Address,
		Kind:         e.Kind,
		GrossWeight:  e.GrossWeight,
	}
}

// RecordWeighIn asks for the post-load weighbridge result to be stored
// against the submitted order.
type RecordWeighIn struct {
	OrderID kernel.UUID
	Loaded  kernel.Weight
	Tare    kernel.Weight
	Net     kernel.Weight
}

// Reset reports that a terminal step was left and the draft cleared.
type Reset struct {
	From    Step
	OrderID kernel.UUID
}

func (SubmitOrder) isEffect()   {}
func (RecordWeighIn) isEffect() {}
func (Reset) isEffect()         {}
