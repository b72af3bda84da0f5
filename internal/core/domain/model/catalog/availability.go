package catalog

import (
	"fmt"

	"stockyard/internal/pkg/errs"
)

// Availability is the stock level of a product.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	Available
	Low
	Unavailable
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Available:   "available",
		Low:         "low",
		Unavailable: "unavailable",
	}
}

func ParseAvailability(s string) (Availability, error) {
	for a, str := range getAvailabilityStrings() {
		if str == s {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability is invalid", fmt.Errorf("%q is not a known availability", s))
}

func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// CanBeOrdered reports whether drivers may pick the product. Low stock still
// counts as orderable.
func (a Availability) CanBeOrdered() bool {
	return a == Available || a == Low
}
