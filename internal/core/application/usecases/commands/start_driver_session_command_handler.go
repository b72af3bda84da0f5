package commands

import (
	"context"

	"stockyard/internal/core/domain/model/session"
	"stockyard/internal/core/ports"
)

// StartDriverSessionCommandHandler creates a session and registers it with
// the session store.
type StartDriverSessionCommandHandler struct {
	sessions ports.SessionRepository
	registry ports.CustomerRegistry
	clock    ports.Clock
}

func NewStartDriverSessionCommandHandler(
	sessions ports.SessionRepository,
	registry ports.CustomerRegistry,
	clock ports.Clock,
) StartDriverSessionCommandHandler {
	return StartDriverSessionCommandHandler{
		sessions: sessions,
		registry: registry,
		clock:    clock,
	}
}

func (h *StartDriverSessionCommandHandler) Handle(ctx context.Context, cmd StartDriverSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID(), h.registry, h.clock.Now())
	if err != nil {
		return err
	}

	return h.sessions.Add(ctx, s)
}
