package memory

import (
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
)

// orderRecord is the immutable row stored in memdb. Objects handed to memdb
// must never be modified, so every write inserts a fresh record.
type orderRecord struct {
	ID     string
	Status int
	Seq    uint64

	params order.Params
	tare   *kernel.Weight
	net    *kernel.Weight
	notes  []order.Note
}

func fromDomain(o *order.Order, seq uint64) *orderRecord {
	rec := &orderRecord{
		ID:     o.ID().String(),
		Status: int(o.Status()),
		Seq:    seq,
		params: order.Params{
			ID:           o.ID(),
			TruckID:      o.TruckID(),
			CustomerName: o.CustomerName(),
			Lines:        o.Lines(),
			Address:      o.Address(),
			Kind:         o.Kind(),
			GrossWeight:  o.GrossWeight(),
		},
		notes: o.Notes(),
	}

	if tare, ok := o.TareWeight(); ok {
		rec.tare = &tare
	}
	if net, ok := o.NetWeight(); ok {
		rec.net = &net
	}

	return rec
}

func (r *orderRecord) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.params, order.Status(r.Status), r.tare, r.net, r.notes)
}
