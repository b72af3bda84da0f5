// Package sessionstore keeps live driver sessions in a bounded LRU cache.
// When the cache is full the least recently used session is evicted; a driver
// who returns to an evicted session has to start over.
package sessionstore

import (
	"context"
	"log/slog"
	"time"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/session"
	"stockyard/internal/pkg/errs"

	lru "github.com/hashicorp/golang-lru"
)

const DefaultCapacity = 256

// Repository implements ports.SessionRepository. golang-lru synchronizes
// access, so it is safe for concurrent use.
type Repository struct {
	cache *lru.Cache
}

func NewRepository(capacity int, logger *slog.Logger) (*Repository, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("session capacity", capacity, 1, "unbounded")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "session_store")

	cache, err := lru.NewWithEvict(capacity, func(key, _ interface{}) {
		logger.Info("Session dropped", "session_id", key)
	})
	if err != nil {
		return nil, err
	}

	return &Repository{cache: cache}, nil
}

func (r *Repository) Add(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if exists, _ := r.cache.ContainsOrAdd(s.ID(), s); exists {
		return errs.NewValueIsInvalidError("session " + s.ID().String() + " already exists")
	}
	return nil
}

// Get marks the session as recently used.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	raw, ok := r.cache.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return raw.(*session.Session), nil
}

func (r *Repository) Remove(_ context.Context, id kernel.UUID) error {
	if !r.cache.Remove(id) {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	return nil
}

// GetAllIdleSince does not touch recency.
func (r *Repository) GetAllIdleSince(_ context.Context, cutoff time.Time) ([]*session.Session, error) {
	var idle []*session.Session
	for _, key := range r.cache.Keys() {
		raw, ok := r.cache.Peek(key)
		if !ok {
			continue
		}
		if s := raw.(*session.Session); s.IdleSince(cutoff) {
			idle = append(idle, s)
		}
	}
	return idle, nil
}

func (r *Repository) Len() int {
	return r.cache.Len()
}
