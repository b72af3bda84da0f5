package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Params carries the attributes fixed when an order is placed.
type Params struct {
	ID           kernel.UUID
	TruckID      string
	CustomerName string
	Lines        []Line
	Address      *catalog.Address
	Kind         Kind
	GrossWeight  kernel.Weight
}

type Order struct {
	id           kernel.UUID
	truckID      string
	customerName string
	lines        []Line
	address      *catalog.Address
	kind         Kind

	status Status

	grossWeight kernel.Weight
	tareWeight  *kernel.Weight
	netWeight   *kernel.Weight

	notes []Note

	isConstructed bool
}

// NewOrder places a pending order.
func NewOrder(p Params) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := order.setParams(p); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from storage without replaying its history.
func RestoreOrder(p Params, status Status, tare, net *kernel.Weight, notes []Note) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setParams(p),
		status.Validate(),
		validateOptionalWeight(tare),
		validateOptionalWeight(net),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.tareWeight = tare
	order.netWeight = net
	order.notes = append([]Note(nil), notes...)

	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// TruckID is the number plate of the truck the order is for.
func (o *Order) TruckID() string {
	return o.truckID
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Address returns nil when the driver chose no address.
func (o *Order) Address() *catalog.Address {
	if o.address == nil {
		return nil
	}
	a := *o.address
	return &a
}

func (o *Order) Kind() Kind {
	return o.kind
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) GrossWeight() kernel.Weight {
	return o.grossWeight
}

func (o *Order) TareWeight() (kernel.Weight, bool) {
	if o.tareWeight == nil {
		return kernel.Weight{}, false
	}
	return *o.tareWeight, true
}

func (o *Order) NetWeight() (kernel.Weight, bool) {
	if o.netWeight == nil {
		return kernel.Weight{}, false
	}
	return *o.netWeight, true
}

func (o *Order) Notes() []Note {
	return append([]Note(nil), o.notes...)
}

// TotalQuantity sums the ordered tons over all lines.
func (o *Order) TotalQuantity() float64 {
	var total float64
	for _, l := range o.lines {
		total += l.quantity
	}
	return total
}

// StartLoading moves a pending order to in-progress.
func (o *Order) StartLoading() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RecordWeighIn stores the post-load weighbridge result.
func (o *Order) RecordWeighIn(tare, net kernel.Weight) error {
	if err := errors.Join(o.status.ValidateWeighIn(), tare.Validate(), net.Validate()); err != nil {
		return err
	}

	o.tareWeight = &tare
	o.netWeight = &net
	return nil
}

func (o *Order) AddNote(text string, at time.Time) error {
	note, err := NewNote(text, at)
	if err != nil {
		return err
	}

	o.notes = append(o.notes, note)
	return nil
}

func (o *Order) setParams(p Params) error {
	return errors.Join(
		o.setID(p.ID),
		o.setTruckID(p.TruckID),
		o.setLines(p.Lines),
		o.setAddress(p.Address),
		o.setKind(p.Kind),
		o.setGrossWeight(p.GrossWeight),
		o.setCustomerName(p.CustomerName),
	)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTruckID(truckID string) error {
	truckID = strings.TrimSpace(truckID)
	if truckID == "" {
		return errs.NewValueIsRequiredError("truck id")
	}
	o.truckID = truckID
	return nil
}

func (o *Order) setCustomerName(name string) error {
	o.customerName = strings.TrimSpace(name)
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.productID == "" {
			return errs.NewValueIsRequiredError("product id")
		}
		if _, dup := seen[l.productID]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines are invalid", fmt.Errorf("product %s is ordered twice", l.productID))
		}
		seen[l.productID] = struct{}{}
	}

	o.lines = append([]Line(nil), lines...)
	return nil
}

func (o *Order) setAddress(address *catalog.Address) error {
	if address == nil {
		o.address = nil
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	a := *address
	o.address = &a
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setGrossWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	o.grossWeight = w
	return nil
}

func validateOptionalWeight(w *kernel.Weight) error {
	if w == nil {
		return nil
	}
	return w.Validate()
}
