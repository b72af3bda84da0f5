package kernel

import (
	"fmt"

	"stockyard/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID wraps github.com/google/uuid so that identifiers of orders and driver
// sessions cannot be created as zero values by accident.
//
//	orderID := kernel.NewUUID()
//	sessionID, err := kernel.UUIDFromString(c.Param("sessionId"))
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any of the textual forms accepted by uuid.Parse.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromRaw(id)
}

// UUIDFromBytes builds a UUID from its 16-byte representation, as stored by
// the postgres adapter.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromRaw(id)
}

// UUIDFromRaw converts an already parsed uuid.UUID, e.g. one bound from an
// HTTP path parameter.
func UUIDFromRaw(id uuid.UUID) (UUID, error) {
	return fromRaw(id)
}

func fromRaw(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
