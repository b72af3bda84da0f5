package ports

import (
	"context"
	"time"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/session"
)

// SessionRepository keeps the live driver sessions. Sessions are mutated in
// place; the repository only tracks which ones exist.
type SessionRepository interface {
	Add(ctx context.Context, s *session.Session) error

	// Get returns errs.ErrObjectNotFound for unknown or evicted sessions.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	Remove(ctx context.Context, id kernel.UUID) error

	// GetAllIdleSince returns sessions without activity after cutoff.
	GetAllIdleSince(ctx context.Context, cutoff time.Time) ([]*session.Session, error)
}
