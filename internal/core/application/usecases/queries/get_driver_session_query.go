package queries

import (
	"errors"
	"time"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/services"
	"stockyard/internal/pkg/guard"
)

var ErrGetDriverSessionQueryIsNotConstructed = errors.New(
	"GetDriverSessionQuery must be created via NewGetDriverSessionQuery constructor",
)

// GetDriverSessionQuery reads what a step screen needs: the current step, the
// draft, the triggers to enable and, at the end, the document.
type GetDriverSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverSessionQuery(sessionID kernel.UUID) (GetDriverSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetDriverSessionQuery{}, err
	}

	return GetDriverSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverSessionQueryIsNotConstructed)
}

func (q GetDriverSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetDriverSessionQueryResponse is a snapshot of one session. Document is nil
// until the session reaches DeliveryNote or Invoice.
type GetDriverSessionQueryResponse struct {
	ID           kernel.UUID
	Step         flow.Step
	Draft        flow.Draft
	Triggers     flow.Enabled
	Document     *services.Document
	StartedAt    time.Time
	LastActivity time.Time
}
