// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines and notes live in child tables keyed by the order id.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TruckID      string     `gorm:"type:varchar(32);not null;index"`
	CustomerName string     `gorm:"type:varchar(255);not null"`
	Kind         int        `gorm:"type:smallint;not null"`
	Status       int        `gorm:"type:smallint;not null;index"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	GrossKg      float64    `gorm:"not null"`
	TareKg       *float64
	NetKg        *float64
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
	Lines        []LineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes        []NoteDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address copied onto the order. An empty ID means
// the driver chose no address.
type AddressDTO struct {
	ID         string `gorm:"type:varchar(64)"`
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Country    string `gorm:"type:varchar(128)"`
}

// LineDTO is one ordered product.
type LineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"type:varchar(64);primaryKey"`
	Quantity  float64   `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// NoteDTO is an operator note. Notes are append-only, Position keeps their
// order.
type NoteDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey;autoIncrement:false"`
	Text     string    `gorm:"type:text;not null"`
	At       time.Time `gorm:"not null"`
}

func (NoteDTO) TableName() string {
	return "order_notes"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	lines := make([]LineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, LineDTO{OrderID: id, ProductID: l.ProductID(), Quantity: l.Quantity()})
	}

	notes := make([]NoteDTO, 0, len(o.Notes()))
	for i, n := range o.Notes() {
		notes = append(notes, NoteDTO{OrderID: id, Position: i, Text: n.Text(), At: n.At()})
	}

	dto := OrderDTO{
		ID:           id,
		TruckID:      o.TruckID(),
		CustomerName: o.CustomerName(),
		Kind:         int(o.Kind()),
		Status:       int(o.Status()),
		GrossKg:      o.GrossWeight().Kilograms(),
		Lines:        lines,
		Notes:        notes,
	}
	if a := o.Address(); a != nil {
		dto.Address = AddressDTO{
			ID:         a.ID(),
			Street:     a.Street(),
			City:       a.City(),
			PostalCode: a.PostalCode(),
			Country:    a.Country(),
		}
	}
	if tare, ok := o.TareWeight(); ok {
		kg := tare.Kilograms()
		dto.TareKg = &kg
	}
	if net, ok := o.NetWeight(); ok {
		kg := net.Kilograms()
		dto.NetKg = &kg
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	gross, err := kernel.NewWeight(dto.GrossKg)
	if err != nil {
		return nil, err
	}
	tare, err := optionalWeight(dto.TareKg)
	if err != nil {
		return nil, err
	}
	net, err := optionalWeight(dto.NetKg)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.NewLine(l.ProductID, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	notes := make([]order.Note, 0, len(dto.Notes))
	for _, n := range dto.Notes {
		note, noteErr := order.NewNote(n.Text, n.At)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, note)
	}

	var address *catalog.Address
	if dto.Address.ID != "" {
		a, addrErr := catalog.NewAddress(dto.Address.ID, dto.Address.Street, dto.Address.City, dto.Address.PostalCode, dto.Address.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	return order.RestoreOrder(order.Params{
		ID:           id,
		TruckID:      dto.TruckID,
		CustomerName: dto.CustomerName,
		Lines:        lines,
		Address:      address,
		Kind:         order.Kind(dto.Kind),
		GrossWeight:  gross,
	}, order.Status(dto.Status), tare, net, notes)
}

func optionalWeight(kg *float64) (*kernel.Weight, error) {
	if kg == nil {
		return nil, nil
	}
	w, err := kernel.NewWeight(*kg)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
