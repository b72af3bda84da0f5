package flow

import (
	"maps"
	"slices"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
)

// AddressChoice is the tri-state address of a draft: not chosen yet, an
// explicit "no address", or a catalog address.
type AddressChoice struct {
	chosen  bool
	address *catalog.Address
}

// NoAddress is the explicit "none" choice.
func NoAddress() AddressChoice {
	return AddressChoice{chosen: true}
}

func SelectAddress(a catalog.Address) AddressChoice {
	return AddressChoice{chosen: true, address: &a}
}

func (c AddressChoice) IsChosen() bool {
	return c.chosen
}

// Address returns the chosen catalog address, or false for "none" and
// "not chosen".
func (c AddressChoice) Address() (catalog.Address, bool) {
	if c.address == nil {
		return catalog.Address{}, false
	}
	return *c.address, true
}

func (c AddressChoice) validate() error {
	if c.address == nil {
		return nil
	}
	return c.address.Validate()
}

func (c AddressChoice) ptr() *catalog.Address {
	if c.address == nil {
		return nil
	}
	a := *c.address
	return &a
}

// Draft is the order under construction. It only ever grows while the driver
// moves forward; Previous drops what later steps recorded.
type Draft struct {
	action Action

	numberPlate  string
	customerName string
	isRegistered bool
	grossWeight  *kernel.Weight

	address AddressChoice

	products   []catalog.Product
	quantities map[string]float64

	orderID *kernel.UUID

	loadedWeight *kernel.Weight
	tareWeight   *kernel.Weight
	netWeight    *kernel.Weight
}

func (d Draft) Action() Action {
	return d.action
}

func (d Draft) NumberPlate() string {
	return d.numberPlate
}

func (d Draft) CustomerName() string {
	return d.customerName
}

// IsRegistered is looked up when identity is confirmed and looked up again
// if the driver goes back and confirms identity once more.
func (d Draft) IsRegistered() bool {
	return d.isRegistered
}

func (d Draft) GrossWeight() (kernel.Weight, bool) {
	return optionalWeight(d.grossWeight)
}

func (d Draft) Address() AddressChoice {
	return d.address
}

// Products returns the selected products ordered by id.
func (d Draft) Products() []catalog.Product {
	return slices.Clone(d.products)
}

// Quantities maps product id to ordered tons. Only positive entries are kept.
func (d Draft) Quantities() map[string]float64 {
	return maps.Clone(d.quantities)
}

func (d Draft) OrderID() (kernel.UUID, bool) {
	if d.orderID == nil {
		return kernel.UUID{}, false
	}
	return *d.orderID, true
}

func (d Draft) LoadedWeight() (kernel.Weight, bool) {
	return optionalWeight(d.loadedWeight)
}

// TareWeight equals the gross weight measured at identity.
func (d Draft) TareWeight() (kernel.Weight, bool) {
	return optionalWeight(d.tareWeight)
}

func (d Draft) NetWeight() (kernel.Weight, bool) {
	return optionalWeight(d.netWeight)
}

func (d Draft) IsEmpty() bool {
	return d.action == ActionUnknown &&
		d.numberPlate == "" &&
		d.customerName == "" &&
		!d.isRegistered &&
		d.grossWeight == nil &&
		!d.address.chosen &&
		len(d.products) == 0 &&
		len(d.quantities) == 0 &&
		d.orderID == nil &&
		d.loadedWeight == nil &&
		d.tareWeight == nil &&
		d.netWeight == nil
}

func (d Draft) isSelected(productID string) bool {
	for _, p := range d.products {
		if p.ID() == productID {
			return true
		}
	}
	return false
}

// clone copies the mutable collections so the result can be changed without
// touching d.
func (d Draft) clone() Draft {
	d.products = slices.Clone(d.products)
	d.quantities = maps.Clone(d.quantities)
	return d
}

// keepUpTo drops every field recorded by steps after step.
func (d Draft) keepUpTo(step Step) Draft {
	d = d.clone()
	if step < Welcome {
		return Draft{}
	}
	if step < Identity {
		d.numberPlate, d.customerName, d.isRegistered, d.grossWeight = "", "", false, nil
	}
	if step < Address {
		d.address = AddressChoice{}
	}
	if step < Products {
		d.products = nil
	}
	if step < Quantities {
		d.quantities = nil
	}
	if step < PreloadConfirm {
		d.orderID = nil
	}
	if step < PostloadWeighIn {
		d.loadedWeight, d.tareWeight, d.netWeight = nil, nil, nil
	}
	return d
}

func optionalWeight(w *kernel.Weight) (kernel.Weight, bool) {
	if w == nil {
		return kernel.Weight{}, false
	}
	return *w, true
}
