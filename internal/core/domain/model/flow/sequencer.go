package flow

import (
	"sync"
	"sync/atomic"
)

// EffectHandler performs the effects of a transition. When it fails the
// transition is dropped and the sequencer keeps its previous state.
type EffectHandler func(next State, effects []Effect) error

// Sequencer owns the state of one kiosk session and applies one trigger at a
// time. It is safe for concurrent use.
type Sequencer struct {
	registry Registry

	busy atomic.Bool

	mu    sync.RWMutex
	state State
}

func NewSequencer(registry Registry) *Sequencer {
	return &Sequencer{
		registry: registry,
		state:    NewState(),
	}
}

func (q *Sequencer) State() State {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state
}

// Fire applies e and hands the resulting effects to handle before committing
// the new state. A trigger that arrives while another one is being applied is
// rejected with ErrTransitionInProgress.
func (q *Sequencer) Fire(e Event, handle EffectHandler) (State, error) {
	if !q.busy.CompareAndSwap(false, true) {
		return q.State(), ErrTransitionInProgress
	}
	defer q.busy.Store(false)

	current := q.State()
	next, effects, err := Transition(current, e, q.registry)
	if err != nil {
		return current, err
	}

	if handle != nil {
		if err := handle(next, effects); err != nil {
			return current, err
		}
	}

	q.mu.Lock()
	q.state = next
	q.mu.Unlock()

	return next, nil
}
