package commands

import (
	"context"
	"errors"

	"stockyard/internal/core/ports"
	"stockyard/internal/pkg/errs"
)

type SweepIdleSessionsCommandHandler struct {
	sessions ports.SessionRepository
	clock    ports.Clock
}

func NewSweepIdleSessionsCommandHandler(
	sessions ports.SessionRepository,
	clock ports.Clock,
) SweepIdleSessionsCommandHandler {
	return SweepIdleSessionsCommandHandler{
		sessions: sessions,
		clock:    clock,
	}
}

// Handle returns how many sessions were removed. Sessions that disappeared
// in the meantime are skipped.
func (h *SweepIdleSessionsCommandHandler) Handle(ctx context.Context, cmd SweepIdleSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock.Now().Add(-cmd.IdleTimeout())
	idle, err := h.sessions.GetAllIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, s := range idle {
		if err := h.sessions.Remove(ctx, s.ID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return removed, err
		}
		removed++
	}

	return removed, nil
}
