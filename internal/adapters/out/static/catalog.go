package static

import (
	"context"
	"fmt"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog keeps products and addresses in the order they were given.
type Catalog struct {
	products  []catalog.Product
	addresses []catalog.Address
}

func NewCatalog(products []catalog.Product, addresses []catalog.Address) *Catalog {
	return &Catalog{
		products:  append([]catalog.Product(nil), products...),
		addresses: append([]catalog.Address(nil), addresses...),
	}
}

// NewDefaultCatalog returns the four bulk materials and three delivery
// addresses of the demo stockyard.
func NewDefaultCatalog() (*Catalog, error) {
	products := make([]catalog.Product, 0, 4)
	for _, p := range []struct {
		id, name, description, area string
		availability                catalog.Availability
		price                       int64
	}{
		{"1", "Premium Gravel", "High-quality construction gravel", "Stockyard Area A", catalog.Available, 45},
		{"2", "Sand", "Fine construction sand", "Stockyard Area B", catalog.Available, 35},
		{"3", "Crushed Stone", "Various sizes available", "Stockyard Area C", catalog.Low, 50},
		{"4", "Concrete Mix", "Ready-mix concrete", "Stockyard Area D", catalog.Unavailable, 55},
	} {
		price := decimal.NewFromInt(p.price)
		product, err := catalog.NewProduct(catalog.ProductParams{
			ID:            p.id,
			Name:          p.name,
			Description:   p.description,
			StockyardArea: p.area,
			Availability:  p.availability,
			Unit:          "tons",
			Price:         &price,
		})
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.id, err)
		}
		products = append(products, product)
	}

	addresses := make([]catalog.Address, 0, 3)
	for _, a := range [][5]string{
		{"1", "Hauptstraße 123", "Berlin", "10115", "Deutschland"},
		{"2", "Industrieweg 45", "Hamburg", "20095", "Deutschland"},
		{"3", "Bahnhofstraße 67", "München", "80331", "Deutschland"},
	} {
		address, err := catalog.NewAddress(a[0], a[1], a[2], a[3], a[4])
		if err != nil {
			return nil, fmt.Errorf("address %s: %w", a[0], err)
		}
		addresses = append(addresses, address)
	}

	return NewCatalog(products, addresses), nil
}

func (c *Catalog) Products(_ context.Context) ([]catalog.Product, error) {
	return append([]catalog.Product(nil), c.products...), nil
}

func (c *Catalog) Product(_ context.Context, id string) (catalog.Product, error) {
	for _, p := range c.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
}

func (c *Catalog) Addresses(_ context.Context) ([]catalog.Address, error) {
	return append([]catalog.Address(nil), c.addresses...), nil
}

func (c *Catalog) Address(_ context.Context, id string) (catalog.Address, error) {
	for _, a := range c.addresses {
		if a.ID() == id {
			return a, nil
		}
	}
	return catalog.Address{}, errs.NewObjectNotFoundError("address", id)
}
