// Package ports defines the contracts between the stockyard core and its
// infrastructure: order storage, driver sessions, the customer registry and
// the product catalog.
package ports

import (
	"context"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves all pending and in-progress orders, oldest first.
	// This is the operator task board.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
