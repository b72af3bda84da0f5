package queries

import (
	"context"

	"stockyard/internal/core/domain/model/order"
)

// GetOpenOrdersQueryHandler reads open orders through the order store.
type GetOpenOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetOpenOrdersQueryHandler(orders OrderReader) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{orders: orders}
}

func (h GetOpenOrdersQueryHandler) Handle(ctx context.Context, query GetOpenOrdersQuery) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllOpen(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]GetOpenOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOpenOrderResponse(o))
	}
	return resp, nil
}

func toOpenOrderResponse(o *order.Order) GetOpenOrdersQueryResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineResponse{ProductID: l.ProductID(), Quantity: l.Quantity()})
	}

	resp := GetOpenOrdersQueryResponse{
		ID:           o.ID(),
		TruckID:      o.TruckID(),
		CustomerName: o.CustomerName(),
		Kind:         o.Kind(),
		Status:       o.Status(),
		Lines:        lines,
		Address:      o.Address(),
		GrossKg:      o.GrossWeight().Kilograms(),
		Notes:        o.Notes(),
	}
	if tare, ok := o.TareWeight(); ok {
		kg := tare.Kilograms()
		resp.TareKg = &kg
	}
	if net, ok := o.NetWeight(); ok {
		kg := net.Kilograms()
		resp.NetKg = &kg
	}
	return resp
}
