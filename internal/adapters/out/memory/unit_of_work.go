package memory

import (
	"context"
	"errors"
	"sync/atomic"

	"stockyard/internal/core/ports"

	"github.com/hashicorp/go-memdb"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work sharing one database.
type UnitOfWorkFactory struct {
	db  *memdb.MemDB
	seq *atomic.Uint64
}

func NewUnitOfWorkFactory(db *memdb.MemDB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db, seq: new(atomic.Uint64)}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db, seq: f.seq}
}

// UnitOfWork wraps one go-memdb write transaction. Writes made through its
// repository become visible to others on Commit only.
type UnitOfWork struct {
	db  *memdb.MemDB
	seq *atomic.Uint64
	txn *memdb.Txn
}

// Begin opens the write transaction. Calling it again is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.txn != nil {
		return nil
	}
	uow.txn = uow.db.Txn(true)
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoTransaction
	}
	uow.txn.Commit()
	uow.txn = nil
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoTransaction
	}
	uow.txn.Abort()
	uow.txn = nil
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{db: uow.db, txn: uow.txn, seq: uow.seq}
}
