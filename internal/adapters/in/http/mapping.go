package http

import (
	"context"
	"sort"

	"stockyard/internal/core/application/usecases/queries"
	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/services"
	"stockyard/internal/pkg/errs"
)

// toFlowEvent turns a request body into a sequencer event. Product and
// address ids are resolved against the catalog; fields the step screens
// leave empty are passed on as zero values so the sequencer guards report
// them.
func (s *Server) toFlowEvent(ctx context.Context, body Event) (flow.Event, error) {
	trigger, err := flow.ParseTrigger(body.Trigger)
	if err != nil {
		return nil, err
	}

	switch trigger {
	case flow.TriggerChooseAction:
		var action flow.Action
		if body.Action != nil {
			if action, err = flow.ParseAction(*body.Action); err != nil {
				return nil, err
			}
		}
		return flow.ChooseAction{Action: action}, nil

	case flow.TriggerConfirmIdentity:
		gross, err := requiredWeight("grossWeightKg", body.GrossWeightKg)
		if err != nil {
			return nil, err
		}
		return flow.ConfirmIdentity{
			NumberPlate:  deref(body.NumberPlate),
			CustomerName: deref(body.CustomerName),
			GrossWeight:  gross,
		}, nil

	case flow.TriggerChooseAddress:
		return s.toChooseAddress(ctx, body)

	case flow.TriggerChooseProducts:
		return s.toChooseProducts(ctx, body.ProductIDs)

	case flow.TriggerSetQuantities:
		return flow.SetQuantities{Quantities: body.Quantities}, nil

	case flow.TriggerConfirmPreload:
		return flow.ConfirmPreload{}, nil

	case flow.TriggerConfirmWeighIn:
		loaded, err := requiredWeight("loadedWeightKg", body.LoadedWeightKg)
		if err != nil {
			return nil, err
		}
		return flow.ConfirmWeighIn{LoadedWeight: loaded}, nil

	case flow.TriggerFinish:
		return flow.Finish{}, nil

	case flow.TriggerPrevious:
		return flow.Previous{}, nil
	}

	return nil, errs.NewValueIsInvalidError("trigger " + body.Trigger)
}

func (s *Server) toChooseAddress(ctx context.Context, body Event) (flow.Event, error) {
	if body.NoAddress != nil && *body.NoAddress {
		return flow.ChooseAddress{Address: flow.NoAddress()}, nil
	}
	if body.AddressID == nil {
		return flow.ChooseAddress{}, nil
	}

	cat, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range cat.Addresses {
		if a.ID() == *body.AddressID {
			return flow.ChooseAddress{Address: flow.SelectAddress(a)}, nil
		}
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("addressId", errs.NewObjectNotFoundError("address", *body.AddressID))
}

func (s *Server) toChooseProducts(ctx context.Context, ids []string) (flow.Event, error) {
	cat, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Product, len(cat.Products))
	for _, p := range cat.Products {
		byID[p.ID()] = p
	}

	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("productIds", errs.NewObjectNotFoundError("product", id))
		}
		products = append(products, p)
	}
	return flow.ChooseProducts{Products: products}, nil
}

func (s *Server) catalog(ctx context.Context) (queries.GetCatalogQueryResponse, error) {
	return s.getCatalogHandler.Handle(ctx, queries.NewGetCatalogQuery())
}

func requiredWeight(name string, kg *float64) (kernel.Weight, error) {
	if kg == nil {
		return kernel.Weight{}, errs.NewValueIsRequiredError(name)
	}
	return kernel.NewWeight(*kg)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toSession(view queries.GetDriverSessionQueryResponse, formatter services.DocumentFormatter) Session {
	var triggers []string
	if view.Triggers.Forward != flow.TriggerUnknown {
		triggers = append(triggers, view.Triggers.Forward.String())
	}
	if view.Triggers.Previous {
		triggers = append(triggers, flow.TriggerPrevious.String())
	}
	if triggers == nil {
		triggers = []string{}
	}

	session := Session{
		ID:              view.ID.Bytes(),
		Step:            view.Step.String(),
		EnabledTriggers: triggers,
		Draft:           toDraft(view.Draft),
		StartedAt:       view.StartedAt,
		LastActivity:    view.LastActivity,
	}
	if view.Document != nil {
		doc := toDocument(*view.Document, formatter)
		session.Document = &doc
	}
	return session
}

func toDraft(d flow.Draft) Draft {
	draft := Draft{
		NumberPlate:   d.NumberPlate(),
		CustomerName:  d.CustomerName(),
		IsRegistered:  d.IsRegistered(),
		AddressChosen: d.Address().IsChosen(),
		Quantities:    d.Quantities(),
	}

	if d.Action().IsValid() {
		draft.Action = d.Action().String()
	}
	if a, ok := d.Address().Address(); ok {
		draft.Address = toAddress(&a)
	}
	for _, p := range d.Products() {
		draft.ProductIDs = append(draft.ProductIDs, p.ID())
	}
	if id, ok := d.OrderID(); ok {
		raw := id.Bytes()
		draft.OrderID = &raw
	}

	draft.GrossWeightKg = kilograms(d.GrossWeight())
	draft.LoadedWeightKg = kilograms(d.LoadedWeight())
	draft.TareWeightKg = kilograms(d.TareWeight())
	draft.NetWeightKg = kilograms(d.NetWeight())

	return draft
}

func kilograms(w kernel.Weight, ok bool) *float64 {
	if !ok {
		return nil
	}
	kg := w.Kilograms()
	return &kg
}

func toDocument(d services.Document, f services.DocumentFormatter) Document {
	doc := Document{
		Kind:           d.Kind.String(),
		Number:         d.Number,
		IssuedAt:       d.IssuedAt,
		Language:       f.Language().String(),
		OrderID:        d.OrderID.Bytes(),
		TruckID:        d.TruckID,
		CustomerName:   d.CustomerName,
		Address:        toAddress(d.Address),
		TareWeightKg:   d.TareWeight.Kilograms(),
		LoadedWeightKg: d.LoadedWeight.Kilograms(),
		NetWeightKg:    d.NetWeight.Kilograms(),
		NetTons:        f.Tons(d.NetTons),
		Lines:          make([]DocumentLine, len(d.Lines)),
	}

	for i, l := range d.Lines {
		doc.Lines[i] = DocumentLine{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			OrderedQuantity: l.OrderedQuantity,
			ActualTons:      f.Tons(l.ActualTons),
		}
		if d.IsInvoice() {
			doc.Lines[i].PricePerTon = f.Money(l.PricePerTon)
			doc.Lines[i].Amount = f.Money(l.Amount)
		}
	}

	if d.IsInvoice() {
		doc.Subtotal = f.Money(d.Subtotal)
		doc.VATRate = f.Percent(d.VATRate)
		doc.VAT = f.Money(d.VAT)
		doc.Total = f.Money(d.Total)
	}

	return doc
}

func toProduct(p catalog.Product) Product {
	product := Product{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		StockyardArea: p.StockyardArea(),
		Availability:  p.Availability().String(),
		Unit:          p.Unit(),
	}
	if price, ok := p.Price(); ok {
		s := price.String()
		product.Price = &s
	}
	return product
}

func toAddress(a *catalog.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		ID:         a.ID(),
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func toOrder(o queries.GetOpenOrdersQueryResponse) Order {
	order := Order{
		ID:            o.ID.Bytes(),
		TruckID:       o.TruckID,
		CustomerName:  o.CustomerName,
		Kind:          o.Kind.String(),
		Status:        o.Status.String(),
		Lines:         make([]OrderLine, len(o.Lines)),
		Address:       toAddress(o.Address),
		GrossWeightKg: o.GrossKg,
		TareWeightKg:  o.TareKg,
		NetWeightKg:   o.NetKg,
	}
	for i, l := range o.Lines {
		order.Lines[i] = OrderLine{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	sort.Slice(order.Lines, func(i, j int) bool { return order.Lines[i].ProductID < order.Lines[j].ProductID })

	for _, n := range o.Notes {
		order.Notes = append(order.Notes, Note{Text: n.Text(), At: n.At()})
	}
	return order
}
