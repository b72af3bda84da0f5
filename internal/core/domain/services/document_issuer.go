package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	tonsScale  = 3
	moneyScale = 2
)

var (
	// DefaultPricePerTon applies to products without a list price.
	DefaultPricePerTon = decimal.NewFromInt(45)

	// DefaultVATRate is the German standard rate.
	DefaultVATRate = decimal.RequireFromString("0.19")
)

// ErrNoDocument is returned for sessions that have not reached a terminal
// step.
var ErrNoDocument = errors.New("session has no document yet")

var kgPerTon = decimal.NewFromInt(1000)

// DocumentIssuer builds delivery notes for registered customers and invoices
// for everybody else from a session that has been weighed out.
//
// Business rules:
//   - the net weight is split across the order lines in proportion to the
//     ordered quantities; the last line absorbs rounding
//   - invoices charge the actual tons at the product price, or
//     DefaultPricePerTon when the product has none, plus VAT
//   - the document number is derived from the order id: DN-<order id> for
//     delivery notes, INV-<order id> for invoices
//
// Example usage:
//
//	issuer := NewDocumentIssuer()
//	doc, err := issuer.Issue(sess.State(), sess.StepEnteredAt())
//	if errors.Is(err, ErrNoDocument) {
//	    // driver is still ordering
//	}
type DocumentIssuer struct {
	defaultPrice decimal.Decimal
	vatRate      decimal.Decimal
}

func NewDocumentIssuer() DocumentIssuer {
	return DocumentIssuer{
		defaultPrice: DefaultPricePerTon,
		vatRate:      DefaultVATRate,
	}
}

// Issue builds the document for a session at DeliveryNote or Invoice.
//
// Parameters:
//   - state: flow state at a terminal step
//   - issuedAt: when the terminal step was entered
//
// Returns:
//   - Document: the delivery note or invoice
//   - error: ErrNoDocument when state is not terminal
func (i DocumentIssuer) Issue(state flow.State, issuedAt time.Time) (Document, error) {
	var kind DocumentKind
	switch state.Step() {
	case flow.DeliveryNote:
		kind = DeliveryNoteDocument
	case flow.Invoice:
		kind = InvoiceDocument
	default:
		return Document{}, ErrNoDocument
	}

	draft := state.Draft()
	orderID, hasOrder := draft.OrderID()
	net, hasNet := draft.NetWeight()
	tare, _ := draft.TareWeight()
	loaded, _ := draft.LoadedWeight()
	if !hasOrder || !hasNet {
		return Document{}, fmt.Errorf("%w: weigh-in is incomplete", ErrNoDocument)
	}

	issuedAt = issuedAt.UTC()
	doc := Document{
		Kind:         kind,
		Number:       documentNumber(kind, orderID),
		IssuedAt:     issuedAt,
		OrderID:      orderID,
		TruckID:      draft.NumberPlate(),
		CustomerName: draft.CustomerName(),
		TareWeight:   tare,
		LoadedWeight: loaded,
		NetWeight:    net,
		NetTons:      decimal.NewFromFloat(net.Kilograms()).Div(kgPerTon).Round(tonsScale),
	}
	if addr, ok := draft.Address().Address(); ok {
		doc.Address = &addr
	}

	doc.Lines = i.lines(draft, doc.NetTons)

	if kind == InvoiceDocument {
		doc.VATRate = i.vatRate
		for idx := range doc.Lines {
			doc.Subtotal = doc.Subtotal.Add(doc.Lines[idx].Amount)
		}
		doc.VAT = doc.Subtotal.Mul(i.vatRate).Round(moneyScale)
		doc.Total = doc.Subtotal.Add(doc.VAT)
	}

	return doc, nil
}

func (i DocumentIssuer) lines(draft flow.Draft, netTons decimal.Decimal) []DocumentLine {
	quantities := draft.Quantities()
	var total float64
	for _, q := range quantities {
		total += q
	}

	products := draft.Products()
	lines := make([]DocumentLine, 0, len(quantities))
	remaining := netTons
	for _, p := range products {
		q, ok := quantities[p.ID()]
		if !ok {
			continue
		}

		price, hasPrice := p.Price()
		if !hasPrice {
			price = i.defaultPrice
		}

		lines = append(lines, DocumentLine{
			ProductID:       p.ID(),
			ProductName:     p.Name(),
			Unit:            p.Unit(),
			OrderedQuantity: q,
			ActualTons:      netTons.Mul(decimal.NewFromFloat(q)).Div(decimal.NewFromFloat(total)).Round(tonsScale),
			PricePerTon:     price,
		})
	}

	for idx := range lines {
		if idx == len(lines)-1 {
			lines[idx].ActualTons = remaining
		}
		remaining = remaining.Sub(lines[idx].ActualTons)
		lines[idx].Amount = lines[idx].ActualTons.Mul(lines[idx].PricePerTon).Round(moneyScale)
	}

	return lines
}

func documentNumber(kind DocumentKind, orderID kernel.UUID) string {
	prefix := "INV"
	if kind == DeliveryNoteDocument {
		prefix = "DN"
	}
	return prefix + "-" + strings.ToUpper(orderID.String())
}
