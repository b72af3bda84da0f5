package queries

import (
	"errors"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves the operator task board: every order that is
// pending or being loaded.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

type OrderLineResponse struct {
	ProductID string
	Quantity  float64
}

// GetOpenOrdersQueryResponse is one card on the task board. Weights are in
// kilograms; TareKg and NetKg are nil before the weigh-in.
type GetOpenOrdersQueryResponse struct {
	ID           kernel.UUID
	TruckID      string
	CustomerName string
	Kind         order.Kind
	Status       order.Status
	Lines        []OrderLineResponse
	Address      *catalog.Address
	GrossKg      float64
	TareKg       *float64
	NetKg        *float64
	Notes        []order.Note
}
