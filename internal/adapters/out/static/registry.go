// Package static serves the fixed reference data of a stockyard: the customer
// registry and the product and address catalog. It stands in for the ERP.
package static

import (
	"strings"
)

// CustomerRegistry is an immutable lookup table of registered customers and
// the trucks registered to them.
type CustomerRegistry struct {
	customers map[string]struct{}
	plates    map[string]string
}

// NewCustomerRegistry builds a registry from plate→customer pairs. Every
// customer named in the table counts as registered.
func NewCustomerRegistry(plates map[string]string) *CustomerRegistry {
	r := &CustomerRegistry{
		customers: make(map[string]struct{}, len(plates)),
		plates:    make(map[string]string, len(plates)),
	}
	for plate, customer := range plates {
		customer = strings.TrimSpace(customer)
		r.plates[normalizePlate(plate)] = customer
		r.customers[customer] = struct{}{}
	}
	return r
}

// NewDefaultCustomerRegistry returns the registry of the demo stockyard.
func NewDefaultCustomerRegistry() *CustomerRegistry {
	return NewCustomerRegistry(map[string]string{
		"AB-123-CD": "Acme Corp",
		"DE-456-FG": "BuildCo Ltd",
		"HI-789-JK": "Construction Plus",
	})
}

func (r *CustomerRegistry) IsRegistered(customerName string) bool {
	_, ok := r.customers[strings.TrimSpace(customerName)]
	return ok
}

func (r *CustomerRegistry) CustomerByPlate(numberPlate string) (string, bool) {
	customer, ok := r.plates[normalizePlate(numberPlate)]
	return customer, ok
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
