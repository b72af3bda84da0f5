package queries

import (
	"context"

	"stockyard/internal/core/ports"
)

type GetCatalogQueryHandler struct {
	catalog ports.Catalog
}

func NewGetCatalogQueryHandler(catalog ports.Catalog) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: catalog}
}

func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	products, err := h.catalog.Products(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	addresses, err := h.catalog.Addresses(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Products:  products,
		Addresses: addresses,
	}, nil
}
