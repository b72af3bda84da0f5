package order

import (
	"fmt"
	"strings"
	"time"

	"stockyard/internal/pkg/errs"
)

// Line orders a quantity (in tons) of one product.
type Line struct {
	productID string
	quantity  float64
}

func NewLine(productID string, quantity float64) (Line, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Line{}, errs.NewValueIsRequiredError("product id")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%g is not greater than 0", quantity))
	}
	return Line{productID: productID, quantity: quantity}, nil
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) Quantity() float64 {
	return l.quantity
}

// Note is a remark left on an order, typically by the excavator operator.
type Note struct {
	text string
	at   time.Time
}

func NewNote(text string, at time.Time) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, errs.NewValueIsRequiredError("note text")
	}
	if at.IsZero() {
		return Note{}, errs.NewValueIsRequiredError("note timestamp")
	}
	return Note{text: text, at: at.UTC()}, nil
}

func (n Note) Text() string {
	return n.text
}

func (n Note) At() time.Time {
	return n.at
}
