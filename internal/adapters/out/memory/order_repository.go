package memory

import (
	"context"
	"sort"
	"sync/atomic"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
)

// OrderRepository implements ports.OrderRepository on go-memdb. With a
// transaction it reads and writes through it, otherwise every call runs in its
// own transaction.
type OrderRepository struct {
	db  *memdb.MemDB
	txn *memdb.Txn
	seq *atomic.Uint64
}

// Add stores a new order. Adding an id twice is rejected.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		existing, err := txn.First(ordersTable, indexID, aggregate.ID().String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.NewValueIsInvalidError("order id " + aggregate.ID().String() + " already exists")
		}

		return txn.Insert(ordersTable, fromDomain(aggregate, r.seq.Add(1)))
	})
}

// Update replaces the stored state of an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		existing, err := txn.First(ordersTable, indexID, aggregate.ID().String())
		if err != nil {
			return err
		}
		if existing == nil {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		return txn.Insert(ordersTable, fromDomain(aggregate, existing.(*orderRecord).Seq))
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var rec *orderRecord
	err := r.read(func(txn *memdb.Txn) error {
		raw, err := txn.First(ordersTable, indexID, id.String())
		if err != nil {
			return err
		}
		if raw == nil {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		rec = raw.(*orderRecord)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec.toDomain()
}

// GetAllOpen returns pending and in-progress orders in submission order.
func (r *OrderRepository) GetAllOpen(_ context.Context) ([]*order.Order, error) {
	var records []*orderRecord
	err := r.read(func(txn *memdb.Txn) error {
		for _, status := range []order.Status{order.Pending, order.InProgress} {
			it, err := txn.Get(ordersTable, indexStatus, int(status))
			if err != nil {
				return err
			}
			for raw := it.Next(); raw != nil; raw = it.Next() {
				records = append(records, raw.(*orderRecord))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *OrderRepository) write(fn func(txn *memdb.Txn) error) error {
	if r.txn != nil {
		return fn(r.txn)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *OrderRepository) read(fn func(txn *memdb.Txn) error) error {
	if r.txn != nil {
		return fn(r.txn)
	}

	txn := r.db.Txn(false)
	defer txn.Abort()
	return fn(txn)
}
