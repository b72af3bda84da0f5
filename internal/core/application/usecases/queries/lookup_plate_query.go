package queries

import (
	"errors"
	"strings"

	"stockyard/internal/pkg/errs"
	"stockyard/internal/pkg/guard"
)

var ErrLookupPlateQueryIsNotConstructed = errors.New(
	"LookupPlateQuery must be created via NewLookupPlateQuery constructor",
)

// LookupPlateQuery resolves a detected number plate to the customer the truck
// is registered to, so the identity screen can be prefilled.
type LookupPlateQuery struct { //nolint:recvcheck //using for validation
	numberPlate string

	guard guard.ConstructorGuard
}

func NewLookupPlateQuery(numberPlate string) (LookupPlateQuery, error) {
	numberPlate = strings.ToUpper(strings.TrimSpace(numberPlate))
	if numberPlate == "" {
		return LookupPlateQuery{}, errs.NewValueIsRequiredError("number plate")
	}

	return LookupPlateQuery{
		numberPlate: numberPlate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q LookupPlateQuery) Validate() error {
	return q.guard.Validate(ErrLookupPlateQueryIsNotConstructed)
}

func (q LookupPlateQuery) NumberPlate() string {
	return q.numberPlate
}

// LookupPlateQueryResponse has an empty CustomerName when the plate is not
// known.
type LookupPlateQueryResponse struct {
	NumberPlate  string
	CustomerName string
	Known        bool
	IsRegistered bool
}
