package queries

import (
	"context"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/services"
	"stockyard/internal/core/ports"
)

type GetDriverSessionQueryHandler struct {
	sessions ports.SessionRepository
	issuer   services.DocumentIssuer
}

func NewGetDriverSessionQueryHandler(sessions ports.SessionRepository, issuer services.DocumentIssuer) GetDriverSessionQueryHandler {
	return GetDriverSessionQueryHandler{
		sessions: sessions,
		issuer:   issuer,
	}
}

// Handle returns the session snapshot. The document is issued with the time
// the terminal step was entered, so repeated reads return the same number.
func (h GetDriverSessionQueryHandler) Handle(ctx context.Context, query GetDriverSessionQuery) (GetDriverSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverSessionQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetDriverSessionQueryResponse{}, err
	}

	state := s.State()
	resp := GetDriverSessionQueryResponse{
		ID:           s.ID(),
		Step:         state.Step(),
		Draft:        state.Draft(),
		Triggers:     flow.Triggers(state),
		StartedAt:    s.StartedAt(),
		LastActivity: s.LastActivity(),
	}

	if state.Step().IsTerminal() {
		doc, err := h.issuer.Issue(state, s.StepEnteredAt())
		if err != nil {
			return GetDriverSessionQueryResponse{}, err
		}
		resp.Document = &doc
	}

	return resp, nil
}
