package order

import (
	"fmt"

	"stockyard/internal/pkg/errs"
)

// Kind tells the operator whether material goes onto or off the truck.
type Kind int

const (
	KindUnknown Kind = iota
	Loading
	Unloading
	Both
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Loading:   "loading",
		Unloading: "unloading",
		Both:      "both",
	}
}

func ParseKind(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a valid kind", s))
}

func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
