package queries

import (
	"errors"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists what the product and address screens offer.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type GetCatalogQueryResponse struct {
	Products  []catalog.Product
	Addresses []catalog.Address
}
