package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command so that concurrent
// kiosk sessions never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the order writes caused by a single flow event or
// operator action. Nothing is visible to other readers before Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called or the store rejects the writes.
	Commit(ctx context.Context) error

	// Rollback after a successful Commit returns an error that callers using
	// defer may ignore.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction opened by Begin.
	OrderRepository() OrderRepository
}
