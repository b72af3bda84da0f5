package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a predefined delivery destination.
type Address struct {
	id         string
	street     string
	city       string
	postalCode string
	country    string

	isConstructed bool
}

func NewAddress(id, street, city, postalCode, country string) (Address, error) {
	a := Address{
		id:            strings.TrimSpace(id),
		street:        strings.TrimSpace(street),
		city:          strings.TrimSpace(city),
		postalCode:    strings.TrimSpace(postalCode),
		country:       strings.TrimSpace(country),
		isConstructed: true,
	}

	if err := errors.Join(
		requireText("address id", a.id),
		requireText("street", a.street),
		requireText("city", a.city),
		requireText("postal code", a.postalCode),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a Address) ID() string         { return a.id }
func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.postalCode, a.city, a.country)
}
