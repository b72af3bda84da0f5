package catalog

import (
	"errors"
	"strings"

	"stockyard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a bulk material that can be loaded at a stockyard area.
// Price is per unit and optional; registered customers never see it.
type Product struct {
	id            string
	name          string
	description   string
	stockyardArea string
	availability  Availability
	unit          string
	price         decimal.NullDecimal

	isConstructed bool
}

// ProductParams groups the attributes of a product; Price is optional.
type ProductParams struct {
	ID            string
	Name          string
	Description   string
	StockyardArea string
	Availability  Availability
	Unit          string
	Price         *decimal.Decimal
}

func NewProduct(p ProductParams) (Product, error) {
	product := Product{
		id:            strings.TrimSpace(p.ID),
		name:          strings.TrimSpace(p.Name),
		description:   p.Description,
		stockyardArea: strings.TrimSpace(p.StockyardArea),
		availability:  p.Availability,
		unit:          p.Unit,
		isConstructed: true,
	}
	if p.Price != nil {
		product.price = decimal.NewNullDecimal(*p.Price)
	}

	var priceErr error
	if p.Price != nil && p.Price.IsNegative() {
		priceErr = errs.NewValueIsInvalidError("price must not be negative")
	}

	if err := errors.Join(
		requireText("product id", product.id),
		requireText("product name", product.name),
		requireText("stockyard area", product.stockyardArea),
		product.availability.Validate(),
		priceErr,
	); err != nil {
		return Product{}, err
	}

	if product.unit == "" {
		product.unit = "tons"
	}

	return product, nil
}

func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p Product) ID() string                 { return p.id }
func (p Product) Name() string               { return p.name }
func (p Product) Description() string        { return p.description }
func (p Product) StockyardArea() string      { return p.stockyardArea }
func (p Product) Availability() Availability { return p.availability }
func (p Product) Unit() string               { return p.unit }

// Price returns the unit price and whether one is set.
func (p Product) Price() (decimal.Decimal, bool) {
	return p.price.Decimal, p.price.Valid
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
