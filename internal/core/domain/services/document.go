package services

import (
	"time"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DocumentKind tells a delivery note from an invoice.
type DocumentKind int

const (
	DocumentKindUnknown DocumentKind = iota
	DeliveryNoteDocument
	InvoiceDocument
)

func (k DocumentKind) String() string {
	switch k {
	case DeliveryNoteDocument:
		return "delivery-note"
	case InvoiceDocument:
		return "invoice"
	default:
		return "unknown"
	}
}

// DocumentLine is one product on a document. ActualTons is the share of the
// net weight attributed to the product.
type DocumentLine struct {
	ProductID       string
	ProductName     string
	Unit            string
	OrderedQuantity float64
	ActualTons      decimal.Decimal
	PricePerTon     decimal.Decimal
	Amount          decimal.Decimal
}

// Document is the paper the driver leaves the stockyard with. Money fields are
// zero on delivery notes.
type Document struct {
	Kind     DocumentKind
	Number   string
	IssuedAt time.Time

	OrderID      kernel.UUID
	TruckID      string
	CustomerName string
	Address      *catalog.Address

	TareWeight   kernel.Weight
	LoadedWeight kernel.Weight
	NetWeight    kernel.Weight
	NetTons      decimal.Decimal

	Lines []DocumentLine

	Subtotal decimal.Decimal
	VATRate  decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

func (d Document) IsInvoice() bool {
	return d.Kind == InvoiceDocument
}
