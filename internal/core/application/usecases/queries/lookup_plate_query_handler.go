package queries

import (
	"context"

	"stockyard/internal/core/ports"
)

type LookupPlateQueryHandler struct {
	registry ports.CustomerRegistry
}

func NewLookupPlateQueryHandler(registry ports.CustomerRegistry) LookupPlateQueryHandler {
	return LookupPlateQueryHandler{registry: registry}
}

func (h LookupPlateQueryHandler) Handle(_ context.Context, query LookupPlateQuery) (LookupPlateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LookupPlateQueryResponse{}, err
	}

	resp := LookupPlateQueryResponse{NumberPlate: query.NumberPlate()}
	if name, ok := h.registry.CustomerByPlate(query.NumberPlate()); ok {
		resp.CustomerName = name
		resp.Known = true
		resp.IsRegistered = h.registry.IsRegistered(name)
	}
	return resp, nil
}
