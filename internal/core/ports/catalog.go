package ports

import (
	"context"

	"stockyard/internal/core/domain/model/catalog"
)

// Catalog serves the products and delivery addresses shown on the step
// screens. Lookups of unknown ids return errs.ErrObjectNotFound.
type Catalog interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Product(ctx context.Context, id string) (catalog.Product, error)
	Addresses(ctx context.Context) ([]catalog.Address, error)
	Address(ctx context.Context, id string) (catalog.Address, error)
}
