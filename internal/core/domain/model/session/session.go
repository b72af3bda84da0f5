package session

import (
	"errors"
	"sync"
	"time"

	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/pkg/errs"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

type Session struct {
	id        kernel.UUID
	sequencer *flow.Sequencer

	mu            sync.RWMutex
	startedAt     time.Time
	lastActivity  time.Time
	stepEnteredAt time.Time

	isConstructed bool
}

// NewSession starts a session at the welcome step.
func NewSession(id kernel.UUID, registry flow.Registry, now time.Time) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, errs.NewValueIsRequiredError("registry")
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("start time")
	}

	now = now.UTC()
	return &Session{
		id:            id,
		sequencer:     flow.NewSequencer(registry),
		startedAt:     now,
		lastActivity:  now,
		stepEnteredAt: now,
		isConstructed: true,
	}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) State() flow.State {
	return s.sequencer.State()
}

func (s *Session) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}

func (s *Session) LastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}

// StepEnteredAt is when the session moved to its current step.
func (s *Session) StepEnteredAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stepEnteredAt
}

// IdleSince reports whether nothing happened in the session after cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastActivity().Before(cutoff)
}

// Fire applies e through the sequencer. Any attempt counts as activity, the
// step time only moves when the step changes.
func (s *Session) Fire(e flow.Event, handle flow.EffectHandler, now time.Time) (flow.State, error) {
	now = now.UTC()
	before := s.sequencer.State().Step()

	next, err := s.sequencer.Fire(e, handle)

	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastActivity) {
		s.lastActivity = now
	}
	if err == nil && next.Step() != before {
		s.stepEnteredAt = now
	}

	return next, err
}
