package kernel

import (
	"fmt"
	"math"

	"stockyard/internal/pkg/errs"
	"stockyard/internal/pkg/guard"
)

const (
	// WeightMinKg and WeightMaxKg bound a single weighbridge reading.
	WeightMinKg float64 = 0
	WeightMaxKg float64 = 60000

	kgPerTon = 1000
)

var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is a scale reading in kilograms.
type Weight struct { //nolint:recvcheck //using for validation
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight validates kg against the weighbridge range.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a number", kg))
	}
	if kg < WeightMinKg || kg > WeightMaxKg {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg, WeightMinKg, WeightMaxKg)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// MustNewWeight is NewWeight for constants and tests.
func MustNewWeight(kg float64) Weight {
	w, err := NewWeight(kg)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) Kilograms() float64 {
	return w.kg
}

// Tons converts to metric tons, the unit quantities are ordered in.
func (w Weight) Tons() float64 {
	return w.kg / kgPerTon
}

// Diff returns the distance between two readings. Both lie within the
// weighbridge range, so the result does too.
func (w Weight) Diff(other Weight) Weight {
	return Weight{kg: math.Abs(w.kg - other.kg), guard: guard.NewConstructorGuard()}
}

func (w Weight) String() string {
	return fmt.Sprintf("%g kg", w.kg)
}
