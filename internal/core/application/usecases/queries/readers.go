// Package queries contains read-only operations of the stockyard service.
// Implements the Query side of the CQRS architecture: every query validates
// its input, reads through a port and returns plain response structs.
package queries

import (
	"context"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
